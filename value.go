// value.go
//
// Runtime value model for the immutable collections.
//
// The collections emulate containers of a dynamically-typed host language,
// so elements travel as a tagged sum `Value` rather than as Go generics.
// A Value is one of: null, bool, int, float, string, array, or object.
// Objects are reference values (pointer identity matters); everything else
// compares by content.
//
// Two equality relations are provided and both are used by the containers:
//   - Equal:       loose structural equality ("==" of the host language);
//     ints and floats compare across tags, arrays elementwise, records by
//     class and field contents, collections by their own Equals.
//   - StrictEqual: same tag and same payload ("===" of the host language);
//     objects compare by identity, never by content.
//
// Hash returns the canonical slot string of a value: a tag-prefixed,
// collision-free textual form. The scalar-keyed map backing and the Set's
// membership index are keyed by these slots; two values share a slot iff
// they are interchangeable as scalar map keys.
package immutable

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNull   ValueTag = iota // null (no payload)
	VTBool                   // bool
	VTInt                    // int64
	VTNum                    // float64
	VTStr                    // string
	VTArray                  // []Value
	VTObject                 // Object (reference value)
)

// Value is the universal element carrier used by all containers.
// Tag selects which Go type Data holds (see ValueTag).
type Value struct {
	Tag  ValueTag
	Data any
}

// Null is the singleton null Value.
var Null = Value{Tag: VTNull}

// Primitive constructors.
func Bool(b bool) Value    { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value    { return Value{Tag: VTInt, Data: n} }
func Num(f float64) Value  { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value   { return Value{Tag: VTStr, Data: s} }
func Arr(xs []Value) Value { return Value{Tag: VTArray, Data: xs} }

// Obj wraps an Object reference into a Value.
func Obj(o Object) Value { return Value{Tag: VTObject, Data: o} }

// Object is the interface of reference values. All implementations are
// pointer types, so interface equality is object identity.
//
// Implemented by *Record and by the collection types *Map, *Seq, *Set
// (class names "Map", "Seq", "Set").
type Object interface {
	ClassName() string
	InstanceOf(name string) bool
}

// Class describes a runtime class: a name, an optional parent, and the
// names of the interfaces it implements. Classes form the lineage that
// class-typed descriptors are checked against.
type Class struct {
	Name       string
	Parent     *Class
	Interfaces []string
}

// NewClass declares a class with an optional parent and interface names.
func NewClass(name string, parent *Class, interfaces ...string) *Class {
	return &Class{Name: name, Parent: parent, Interfaces: interfaces}
}

// InstanceOf reports whether the class, one of its ancestors, or one of
// the interfaces along the chain carries the given name.
func (c *Class) InstanceOf(name string) bool {
	for cl := c; cl != nil; cl = cl.Parent {
		if cl.Name == name {
			return true
		}
		for _, in := range cl.Interfaces {
			if in == name {
				return true
			}
		}
	}
	return false
}

// Record is a plain class instance: a lineage plus named fields.
// Records are the canonical identity-keyed map keys; two records with
// identical fields are still two distinct keys.
type Record struct {
	Class  *Class
	Fields map[string]Value
}

// NewRecord builds a record of the given class. fields may be nil.
func NewRecord(class *Class, fields map[string]Value) *Record {
	if fields == nil {
		fields = map[string]Value{}
	}
	return &Record{Class: class, Fields: fields}
}

func (r *Record) ClassName() string { return r.Class.Name }

func (r *Record) InstanceOf(name string) bool { return r.Class.InstanceOf(name) }

// kindName names the runtime kind of a value for diagnostics. Objects
// report their class name.
func kindName(v Value) string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTBool:
		return "bool"
	case VTInt:
		return "int"
	case VTNum:
		return "float"
	case VTStr:
		return "string"
	case VTArray:
		return "array"
	case VTObject:
		return v.Data.(Object).ClassName()
	default:
		return "unknown"
	}
}

// Equal is loose structural equality. Numeric values compare across the
// int/float tags; arrays compare elementwise; records compare by class and
// field contents; collections delegate to their own Equals.
func Equal(a, b Value) bool {
	if na, oka := numeric(a); oka {
		if nb, okb := numeric(b); okb {
			return na == nb
		}
		return false
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNull:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTArray:
		ax := a.Data.([]Value)
		bx := b.Data.([]Value)
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if !Equal(ax[i], bx[i]) {
				return false
			}
		}
		return true
	case VTObject:
		return objectEqual(a.Data.(Object), b.Data.(Object))
	default:
		return false
	}
}

func numeric(v Value) (float64, bool) {
	switch v.Tag {
	case VTInt:
		return float64(v.Data.(int64)), true
	case VTNum:
		return v.Data.(float64), true
	}
	return 0, false
}

func objectEqual(a, b Object) bool {
	if a == b {
		return true
	}
	switch av := a.(type) {
	case *Record:
		bv, ok := b.(*Record)
		if !ok || av.Class != bv.Class || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for k, x := range av.Fields {
			y, ok := bv.Fields[k]
			if !ok || !Equal(x, y) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		return ok && av.Equals(bv)
	case *Seq:
		bv, ok := b.(*Seq)
		return ok && av.Equals(bv)
	case *Set:
		bv, ok := b.(*Set)
		return ok && av.Equals(bv)
	default:
		return false
	}
}

// StrictEqual is same-tag, same-payload equality. Objects compare by
// identity; arrays elementwise-strict; int and float never compare equal.
func StrictEqual(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNull:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTInt:
		return a.Data.(int64) == b.Data.(int64)
	case VTNum:
		return a.Data.(float64) == b.Data.(float64)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTArray:
		ax := a.Data.([]Value)
		bx := b.Data.([]Value)
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if !StrictEqual(ax[i], bx[i]) {
				return false
			}
		}
		return true
	case VTObject:
		return a.Data.(Object) == b.Data.(Object)
	default:
		return false
	}
}

// Hash returns the canonical slot string of a value. Slots are
// tag-prefixed so values of different kinds never collide; objects slot by
// identity. Satisfies set.Hasher[string] for the go-set membership index.
func (v Value) Hash() string {
	switch v.Tag {
	case VTNull:
		return "n"
	case VTBool:
		if v.Data.(bool) {
			return "b:1"
		}
		return "b:0"
	case VTInt:
		return "i:" + strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return "f:" + strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return "s:" + v.Data.(string)
	case VTArray:
		// Length-prefix each element slot so payloads containing the
		// delimiters cannot forge another array's slot.
		xs := v.Data.([]Value)
		var b strings.Builder
		b.WriteString("a:[")
		for _, x := range xs {
			h := x.Hash()
			b.WriteString(strconv.Itoa(len(h)))
			b.WriteByte(':')
			b.WriteString(h)
		}
		b.WriteByte(']')
		return b.String()
	case VTObject:
		return "o:" + fmt.Sprintf("%p", v.Data)
	default:
		return "?"
	}
}

// sortedFieldNames returns a record's field names in stable order.
// Used by the renderer; records themselves are unordered.
func sortedFieldNames(r *Record) []string {
	names := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
