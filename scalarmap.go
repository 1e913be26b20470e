// scalarmap.go
//
// The scalar-keyed backing: an insertion-ordered persistent store for
// every key type except objects. Keys occupy canonical slots (Value.Hash);
// two keys with the same slot are the same key.
//
// Persistence works by copying the spine (the slot index and the order
// slice) on every write while sharing the entry payloads; the backing an
// operation started from is never touched. Updating an existing key keeps
// its position — an explicit contract: a re-put key is not re-appended.
package immutable

type scalarEntry struct {
	key Value
	val Value
}

type scalarStore struct {
	slots map[string]scalarEntry
	order []string // slot strings in insertion order
}

func newScalarStore(keyType TypeDescriptor) (*scalarStore, error) {
	if keyType.IsObject() {
		return nil, newConstructionError("scalar-keyed map cannot hold %s keys", keyType)
	}
	return &scalarStore{slots: map[string]scalarEntry{}}, nil
}

func (s *scalarStore) size() int { return len(s.order) }

func (s *scalarStore) put(k, v Value) backing {
	slot := k.Hash()
	next := &scalarStore{
		slots: make(map[string]scalarEntry, len(s.slots)+1),
		order: s.order,
	}
	for sl, e := range s.slots {
		next.slots[sl] = e
	}
	if _, ok := s.slots[slot]; !ok {
		next.order = make([]string, len(s.order), len(s.order)+1)
		copy(next.order, s.order)
		next.order = append(next.order, slot)
	}
	next.slots[slot] = scalarEntry{key: k, val: v}
	return next
}

func (s *scalarStore) get(k Value) (Value, error) {
	e, ok := s.slots[k.Hash()]
	if !ok {
		return Value{}, &KeyNotFoundError{Key: k}
	}
	return e.val, nil
}

func (s *scalarStore) contains(k Value) bool {
	_, ok := s.slots[k.Hash()]
	return ok
}

func (s *scalarStore) remove(k Value) backing {
	slot := k.Hash()
	if _, ok := s.slots[slot]; !ok {
		return s // absent key: same contents, no error
	}
	next := &scalarStore{
		slots: make(map[string]scalarEntry, len(s.slots)-1),
		order: make([]string, 0, len(s.order)-1),
	}
	for sl, e := range s.slots {
		if sl != slot {
			next.slots[sl] = e
		}
	}
	for _, sl := range s.order {
		if sl != slot {
			next.order = append(next.order, sl)
		}
	}
	return next
}

// equals: same size and every key of one present in the other with a
// structurally equal value. Order does not participate.
func (s *scalarStore) equals(o backing) bool {
	other, ok := o.(*scalarStore)
	if !ok || len(s.slots) != len(other.slots) {
		return false
	}
	for slot, e := range s.slots {
		oe, ok := other.slots[slot]
		if !ok || !Equal(e.val, oe.val) {
			return false
		}
	}
	return true
}

func (s *scalarStore) foreach(fn func(k, v Value)) {
	for _, slot := range s.order {
		e := s.slots[slot]
		fn(e.key, e.val)
	}
}
