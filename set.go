// set.go
//
// Set is the key-collection collaborator of Map: an immutable set that
// remembers insertion order. Membership is by canonical slot (Value.Hash),
// so scalars dedupe structurally and objects dedupe by identity.
//
// The membership index is a hashicorp/go-set HashSet keyed by the slot
// string; Add copies it, so older Set versions stay untouched.
package immutable

import (
	"github.com/hashicorp/go-set/v3"
)

// Set is an immutable, insertion-ordered set of values.
type Set struct {
	order []Value
	index *set.HashSet[Value, string]
}

// NewSet builds a set over the given values, dropping duplicates while
// keeping first-insertion order.
func NewSet(items ...Value) *Set {
	s := &Set{index: set.NewHashSet[Value, string](len(items))}
	for _, v := range items {
		if s.index.Insert(v) {
			s.order = append(s.order, v)
		}
	}
	return s
}

func (s *Set) ClassName() string { return "Set" }

func (s *Set) InstanceOf(name string) bool { return name == "Set" }

// Add returns a set containing v. Adding a member yields the receiver.
func (s *Set) Add(v Value) *Set {
	if s.index.Contains(v) {
		return s
	}
	order := make([]Value, len(s.order), len(s.order)+1)
	copy(order, s.order)
	idx := s.index.Copy()
	idx.Insert(v)
	return &Set{order: append(order, v), index: idx}
}

// Contains reports membership by canonical slot. Total over any value;
// never errors.
func (s *Set) Contains(v Value) bool {
	return s.index.Contains(v)
}

func (s *Set) Size() int { return len(s.order) }

func (s *Set) Empty() bool { return len(s.order) == 0 }

// Values returns the members in insertion order as a fresh slice.
func (s *Set) Values() []Value {
	out := make([]Value, len(s.order))
	copy(out, s.order)
	return out
}

// ForEach visits the members in insertion order.
func (s *Set) ForEach(fn func(v Value)) {
	for _, v := range s.order {
		fn(v)
	}
}

// Equals reports same membership, regardless of insertion order.
func (s *Set) Equals(o *Set) bool {
	if o == nil || len(s.order) != len(o.order) {
		return false
	}
	for _, v := range s.order {
		if !o.index.Contains(v) {
			return false
		}
	}
	return true
}
