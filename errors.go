// errors.go: the error taxonomy of the collection library.
//
// All failures are programmer/usage errors surfaced synchronously to the
// caller; nothing is retried and no partial mutation is ever visible. Each
// kind is a distinct struct so callers can branch with errors.As:
//
//   - *TypeMismatchError — a key or value does not conform to the declared
//     descriptor; Position tells which argument (1 = key, 2 = value).
//   - *KeyNotFoundError  — Get on an absent key.
//   - *EmptyGroupError   — GroupBy on an empty map.
//   - *ConstructionError — incompatible descriptors combined (an identity
//     backing with a scalar key type, merging different instantiations, ...).
//
// Contains is the one operation that never raises a type mismatch: a
// membership query must be total over arbitrary input, so a mismatched
// argument just reports false.
package immutable

import "fmt"

// TypeMismatchError reports a key or value rejected by the declared type.
// Position is 1-based: 1 means the key argument, 2 the value argument.
type TypeMismatchError struct {
	Position int
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("argument %d must be of type %s, %s given", e.Position, e.Expected, e.Got)
}

// KeyNotFoundError reports a lookup of an absent key. The rendered key is
// included for diagnostics; no backing detail leaks.
type KeyNotFoundError struct {
	Key Value
}

func (e *KeyNotFoundError) Error() string {
	return "key not found: " + FormatValue(e.Key)
}

// EmptyGroupError reports GroupBy applied to a map with zero entries;
// grouping an empty container is invalid, not vacuously empty.
type EmptyGroupError struct{}

func (e *EmptyGroupError) Error() string {
	return "cannot group an empty map"
}

// ConstructionError reports an invalid combination of type descriptors.
type ConstructionError struct {
	Msg string
}

func (e *ConstructionError) Error() string { return e.Msg }

func newConstructionError(format string, args ...any) *ConstructionError {
	return &ConstructionError{Msg: fmt.Sprintf(format, args...)}
}
