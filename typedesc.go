// typedesc.go
//
// Runtime type descriptors and the validator that emulates generics.
//
// A descriptor is either one of the primitive tags
//
//	int float string bool array object scalar mixed
//
// or, for any other non-empty spelling, a class/interface name. Class
// descriptors accept an object whose lineage carries the name; there is no
// coercion anywhere. Conformance is deliberately strict: `int` does not
// accept a float and `float` does not accept an int, because a widened
// number would occupy a different canonical slot than the value it widens
// to and the round-trip guarantee would break.
package immutable

type typeKind int

const (
	kindMixed typeKind = iota
	kindScalar
	kindBool
	kindInt
	kindFloat
	kindString
	kindArray
	kindObject
	kindClass
)

// TypeDescriptor is the runtime representation of a declared element type.
// Descriptors are small comparable values; an empty descriptor is not
// valid and is rejected at construction.
type TypeDescriptor struct {
	kind  typeKind
	class string // set iff kind == kindClass
}

// ParseType interprets a descriptor spelling. Primitive tags map to their
// kinds; any other spelling names a class or interface.
func ParseType(s string) TypeDescriptor {
	switch s {
	case "mixed":
		return TypeDescriptor{kind: kindMixed}
	case "scalar":
		return TypeDescriptor{kind: kindScalar}
	case "bool":
		return TypeDescriptor{kind: kindBool}
	case "int":
		return TypeDescriptor{kind: kindInt}
	case "float":
		return TypeDescriptor{kind: kindFloat}
	case "string":
		return TypeDescriptor{kind: kindString}
	case "array":
		return TypeDescriptor{kind: kindArray}
	case "object":
		return TypeDescriptor{kind: kindObject}
	default:
		return TypeDescriptor{kind: kindClass, class: s}
	}
}

// String returns the descriptor spelling (the primitive tag or the class
// name).
func (t TypeDescriptor) String() string {
	switch t.kind {
	case kindMixed:
		return "mixed"
	case kindScalar:
		return "scalar"
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindFloat:
		return "float"
	case kindString:
		return "string"
	case kindArray:
		return "array"
	case kindObject:
		return "object"
	default:
		return t.class
	}
}

// Same reports descriptor equality. Two maps are the same generic
// instantiation only when both their descriptors are Same.
func (t TypeDescriptor) Same(o TypeDescriptor) bool {
	return t.kind == o.kind && t.class == o.class
}

// IsObject reports whether the descriptor declares an object type (the
// `object` wildcard or a class name). Object key types select the
// identity-keyed backing.
func (t TypeDescriptor) IsObject() bool {
	return t.kind == kindObject || t.kind == kindClass
}

// Accepts reports whether the value conforms to the descriptor.
func (t TypeDescriptor) Accepts(v Value) bool {
	switch t.kind {
	case kindMixed:
		return true
	case kindScalar:
		switch v.Tag {
		case VTBool, VTInt, VTNum, VTStr:
			return true
		}
		return false
	case kindBool:
		return v.Tag == VTBool
	case kindInt:
		return v.Tag == VTInt
	case kindFloat:
		return v.Tag == VTNum
	case kindString:
		return v.Tag == VTStr
	case kindArray:
		return v.Tag == VTArray
	case kindObject:
		return v.Tag == VTObject
	case kindClass:
		return v.Tag == VTObject && v.Data.(Object).InstanceOf(t.class)
	default:
		return false
	}
}

// Check validates a value against the descriptor and fails with a
// *TypeMismatchError naming the argument position (1 = key, 2 = value).
// Validation happens before any mutation, so a failing operation leaves
// no partial write behind.
func (t TypeDescriptor) Check(v Value, pos int) error {
	if t.Accepts(v) {
		return nil
	}
	return &TypeMismatchError{Position: pos, Expected: t.String(), Got: kindName(v)}
}
