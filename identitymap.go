// identitymap.go
//
// The identity-keyed backing: each key is a distinct object reference.
// Two structurally identical but distinct objects are two keys; replacing
// a value requires the exact same reference.
//
// Iteration order is a product of the store's internal bookkeeping, not of
// insertion: removal moves the last entry into the freed hole, and every
// mutation yields a backing whose iteration restarts from its first slot.
// Callers must not expect the insertion-order guarantee of the scalar
// backing here.
package immutable

type identEntry struct {
	key Object
	val Value
}

type identityStore struct {
	index   map[Object]int
	entries []identEntry
}

func newIdentityStore(keyType TypeDescriptor) (*identityStore, error) {
	if !keyType.IsObject() {
		return nil, newConstructionError("identity-keyed map requires an object key type, %s given", keyType)
	}
	return &identityStore{index: map[Object]int{}}, nil
}

func (s *identityStore) size() int { return len(s.entries) }

func (s *identityStore) put(k, v Value) backing {
	obj := k.Data.(Object) // facade validated: key type is an object type
	next := s.clone(len(s.entries) + 1)
	if i, ok := next.index[obj]; ok {
		next.entries[i].val = v
		return next
	}
	next.index[obj] = len(next.entries)
	next.entries = append(next.entries, identEntry{key: obj, val: v})
	return next
}

func (s *identityStore) get(k Value) (Value, error) {
	if k.Tag == VTObject {
		if i, ok := s.index[k.Data.(Object)]; ok {
			return s.entries[i].val, nil
		}
	}
	return Value{}, &KeyNotFoundError{Key: k}
}

// contains tolerates non-object arguments: a membership probe with a
// mismatched key reports false instead of failing.
func (s *identityStore) contains(k Value) bool {
	if k.Tag != VTObject {
		return false
	}
	_, ok := s.index[k.Data.(Object)]
	return ok
}

func (s *identityStore) remove(k Value) backing {
	if k.Tag != VTObject {
		return s
	}
	i, ok := s.index[k.Data.(Object)]
	if !ok {
		return s
	}
	next := s.clone(len(s.entries))
	last := len(next.entries) - 1
	moved := next.entries[last]
	delete(next.index, next.entries[i].key)
	if i != last {
		next.entries[i] = moved
		next.index[moved.key] = i
	}
	next.entries = next.entries[:last]
	return next
}

// equals: identity on keys, strict (same tag, same payload) equality on
// values.
func (s *identityStore) equals(o backing) bool {
	other, ok := o.(*identityStore)
	if !ok || len(s.entries) != len(other.entries) {
		return false
	}
	for _, e := range s.entries {
		i, ok := other.index[e.key]
		if !ok || !StrictEqual(e.val, other.entries[i].val) {
			return false
		}
	}
	return true
}

func (s *identityStore) foreach(fn func(k, v Value)) {
	for _, e := range s.entries {
		fn(Obj(e.key), e.val)
	}
}

func (s *identityStore) clone(capHint int) *identityStore {
	next := &identityStore{
		index:   make(map[Object]int, capHint),
		entries: make([]identEntry, len(s.entries), capHint),
	}
	for o, i := range s.index {
		next.index[o] = i
	}
	copy(next.entries, s.entries)
	return next
}
