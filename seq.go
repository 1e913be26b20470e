// seq.go
//
// Seq is the ordered-sequence collaborator of Map: an immutable list of
// values. Mutators return a new *Seq sharing no observable state with the
// receiver.
package immutable

import (
	"strconv"
	"strings"
)

// Seq is an immutable ordered sequence of values.
type Seq struct {
	items []Value
}

// NewSeq builds a sequence over the given values.
func NewSeq(items ...Value) *Seq {
	own := make([]Value, len(items))
	copy(own, items)
	return &Seq{items: own}
}

func (s *Seq) ClassName() string { return "Seq" }

func (s *Seq) InstanceOf(name string) bool { return name == "Seq" }

// Add returns a sequence with v appended.
func (s *Seq) Add(v Value) *Seq {
	next := make([]Value, len(s.items), len(s.items)+1)
	copy(next, s.items)
	return &Seq{items: append(next, v)}
}

// Get returns the i-th value, or false when i is out of range.
func (s *Seq) Get(i int) (Value, bool) {
	if i < 0 || i >= len(s.items) {
		return Value{}, false
	}
	return s.items[i], true
}

func (s *Seq) Size() int { return len(s.items) }

func (s *Seq) Empty() bool { return len(s.items) == 0 }

// ForEach visits the values in order.
func (s *Seq) ForEach(fn func(i int, v Value)) {
	for i, v := range s.items {
		fn(i, v)
	}
}

// Equals reports elementwise structural equality.
func (s *Seq) Equals(o *Seq) bool {
	if o == nil || len(s.items) != len(o.items) {
		return false
	}
	for i := range s.items {
		if !Equal(s.items[i], o.items[i]) {
			return false
		}
	}
	return true
}

// Join renders every value as text and joins with sep. Strings join raw
// (unquoted); numbers use their canonical decimal form; null renders
// empty; arrays and objects fall back to FormatValue.
func (s *Seq) Join(sep string) string {
	parts := make([]string, len(s.items))
	for i, v := range s.items {
		parts[i] = scalarText(v)
	}
	return strings.Join(parts, sep)
}

func scalarText(v Value) string {
	switch v.Tag {
	case VTNull:
		return ""
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return v.Data.(string)
	default:
		return FormatValue(v)
	}
}
