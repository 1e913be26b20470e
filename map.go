// map.go
//
// The Map facade: the public generic associative container.
//
// A Map is an immutable value {keyType, valueType, backing}. The key
// descriptor selects the storage strategy once, at construction — object
// key types get the identity-keyed backing, everything else the
// insertion-ordered scalar backing — and the strategy never changes for
// the lifetime of the instance. Every inbound key and value is validated
// against the declared descriptors before it reaches the backing, so a
// rejected operation performs no partial mutation.
//
// All mutators are pure: they return a new *Map and leave the receiver
// (and every older version) fully usable. Because no instance is ever
// mutated in place, concurrent readers need no synchronization.
package immutable

import "strings"

// backing is the capability surface a storage strategy must provide.
// Mutators return a new backing; the receiver stays valid.
type backing interface {
	put(k, v Value) backing
	get(k Value) (Value, error)
	contains(k Value) bool
	remove(k Value) backing
	size() int
	equals(o backing) bool
	foreach(fn func(k, v Value))
}

// Map is an immutable, runtime-type-checked associative container.
type Map struct {
	keyType   TypeDescriptor
	valueType TypeDescriptor
	store     backing
}

// Of builds an empty Map with the given key and value descriptors (see
// ParseType for the accepted spellings). The key descriptor picks the
// backing: object/class keys are stored by identity, scalar/array keys by
// canonical slot in insertion order. Fails with *ConstructionError on a
// blank descriptor.
func Of(keyType, valueType string) (*Map, error) {
	if strings.TrimSpace(keyType) == "" || strings.TrimSpace(valueType) == "" {
		return nil, newConstructionError("map requires non-empty key and value types")
	}
	kt := ParseType(keyType)
	vt := ParseType(valueType)
	var st backing
	var err error
	if kt.IsObject() {
		st, err = newIdentityStore(kt)
	} else {
		st, err = newScalarStore(kt)
	}
	if err != nil {
		return nil, err
	}
	return &Map{keyType: kt, valueType: vt, store: st}, nil
}

func (m *Map) ClassName() string { return "Map" }

func (m *Map) InstanceOf(name string) bool { return name == "Map" }

// KeyType returns the declared key descriptor spelling. Available on an
// empty Map; descriptors are fixed at construction.
func (m *Map) KeyType() string { return m.keyType.String() }

// ValueType returns the declared value descriptor spelling.
func (m *Map) ValueType() string { return m.valueType.String() }

func (m *Map) Size() int { return m.store.size() }

func (m *Map) Empty() bool { return m.store.size() == 0 }

// Put returns a Map in which key maps to value. An existing key keeps its
// iteration position in the scalar backing. Fails with *TypeMismatchError
// when either argument violates the declared descriptors.
func (m *Map) Put(key, value Value) (*Map, error) {
	if err := m.keyType.Check(key, 1); err != nil {
		return nil, err
	}
	if err := m.valueType.Check(value, 2); err != nil {
		return nil, err
	}
	return m.derive(m.store.put(key, value)), nil
}

// Get returns the value stored under key. Fails with *TypeMismatchError
// for a key of the wrong type and *KeyNotFoundError for an absent key.
func (m *Map) Get(key Value) (Value, error) {
	if err := m.keyType.Check(key, 1); err != nil {
		return Value{}, err
	}
	return m.store.get(key)
}

// Contains reports key membership. Unlike every other operation it never
// raises a type mismatch: a key of the wrong type is simply not contained.
func (m *Map) Contains(key Value) bool {
	if !m.keyType.Accepts(key) {
		return false
	}
	return m.store.contains(key)
}

// Remove returns a Map without the given key. Removing an absent key is a
// no-op that yields an equal Map; the remaining iteration order is
// preserved by the scalar backing.
func (m *Map) Remove(key Value) (*Map, error) {
	if err := m.keyType.Check(key, 1); err != nil {
		return nil, err
	}
	next := m.store.remove(key)
	if next == m.store {
		return m, nil
	}
	return m.derive(next), nil
}

// Clear returns an empty Map of the same instantiation.
func (m *Map) Clear() *Map {
	fresh, err := Of(m.keyType.String(), m.valueType.String())
	if err != nil {
		// descriptors were validated when m was built
		panic("immutable: clear of a malformed map: " + err.Error())
	}
	return fresh
}

// Equals reports whether both Maps are the same generic instantiation and
// hold equal entries under the backing's equality rule (structural values
// for scalar keys, identity keys and strict values for object keys).
func (m *Map) Equals(o *Map) bool {
	if o == nil {
		return false
	}
	if !m.keyType.Same(o.keyType) || !m.valueType.Same(o.valueType) {
		return false
	}
	return m.store.equals(o.store)
}

// ForEach visits every entry in the backing's iteration order.
func (m *Map) ForEach(fn func(key, value Value)) {
	m.store.foreach(fn)
}

// Filter returns a Map holding only the entries for which pred is true,
// in iteration order.
func (m *Map) Filter(pred func(key, value Value) bool) *Map {
	out := m.Clear()
	m.store.foreach(func(k, v Value) {
		if pred(k, v) {
			out.store = out.store.put(k, v)
		}
	})
	return out
}

// Reduce folds over the entries in iteration order.
func (m *Map) Reduce(init any, fn func(acc any, key, value Value) any) any {
	acc := init
	m.store.foreach(func(k, v Value) {
		acc = fn(acc, k, v)
	})
	return acc
}

// MapResult is the tagged result of a MapEntries callback. The callback's
// intent is explicit, never inferred from the shape of what it returns:
// MappedValue keeps the key, MappedEntry replaces key and value both.
type MapResult struct {
	rekeyed bool
	key     Value
	value   Value
}

// MappedValue replaces the entry's value and keeps its key.
func MappedValue(v Value) MapResult { return MapResult{value: v} }

// MappedEntry replaces both the key and the value of the entry. The new
// key is re-validated against the Map's key descriptor.
func MappedEntry(k, v Value) MapResult { return MapResult{rekeyed: true, key: k, value: v} }

// MapEntries transforms every entry through fn, building a new Map. New
// values are validated against the value descriptor; a rekeying result
// also re-validates the key. When two entries are rekeyed onto the same
// key, the later one (in iteration order) wins, matching Put semantics.
func (m *Map) MapEntries(fn func(key, value Value) MapResult) (*Map, error) {
	out := m.Clear()
	var failure error
	m.store.foreach(func(k, v Value) {
		if failure != nil {
			return
		}
		res := fn(k, v)
		nk := k
		if res.rekeyed {
			nk = res.key
			if err := m.keyType.Check(nk, 1); err != nil {
				failure = err
				return
			}
		}
		if err := m.valueType.Check(res.value, 2); err != nil {
			failure = err
			return
		}
		out.store = out.store.put(nk, res.value)
	})
	if failure != nil {
		return nil, failure
	}
	return out, nil
}

// Keys returns the keys as a fresh Set, in iteration order. The snapshot
// does not alias the Map's internals.
func (m *Map) Keys() *Set {
	s := NewSet()
	m.store.foreach(func(k, _ Value) {
		s = s.Add(k)
	})
	return s
}

// Values returns the values as a fresh Seq, in iteration order.
func (m *Map) Values() *Seq {
	s := NewSeq()
	m.store.foreach(func(_, v Value) {
		s = s.Add(v)
	})
	return s
}

// Join renders the values and joins them with sep.
func (m *Map) Join(sep string) string {
	return m.Values().Join(sep)
}

func (m *Map) derive(st backing) *Map {
	return &Map{keyType: m.keyType, valueType: m.valueType, store: st}
}
