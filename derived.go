// derived.go
//
// Higher-order algorithms derived from the Map facade's primitives. They
// are written purely in terms of Reduce/ForEach/Put/Get/Contains, so they
// behave identically over both backings.
package immutable

// Merge returns a Map holding the entries of both receivers, right-biased:
// whenever both contain a key, the entry of other wins. Both Maps must be
// the same generic instantiation; merging across instantiations fails with
// *ConstructionError.
func (m *Map) Merge(other *Map) (*Map, error) {
	if other == nil {
		return m, nil
	}
	if !m.keyType.Same(other.keyType) || !m.valueType.Same(other.valueType) {
		return nil, newConstructionError(
			"cannot merge map<%s, %s> with map<%s, %s>",
			m.keyType, m.valueType, other.keyType, other.valueType)
	}
	merged := other.Reduce(any(m), func(acc any, k, v Value) any {
		next, err := acc.(*Map).Put(k, v)
		if err != nil {
			// entries of an equal instantiation always conform
			panic("immutable: merge produced a mismatch: " + err.Error())
		}
		return next
	})
	return merged.(*Map), nil
}

// Partition splits the entries by pred into a two-entry Map keyed by bool:
// true maps to the sub-Map of matching entries, false to the rest. Both
// sub-Maps share the receiver's instantiation. Partitioning an empty Map
// yields two empty sub-Maps.
func (m *Map) Partition(pred func(key, value Value) bool) *Map {
	match := m.Clear()
	rest := m.Clear()
	m.ForEach(func(k, v Value) {
		if pred(k, v) {
			match.store = match.store.put(k, v)
		} else {
			rest.store = rest.store.put(k, v)
		}
	})
	out, err := Of("bool", "Map")
	if err != nil {
		panic("immutable: partition result map: " + err.Error())
	}
	out, _ = out.Put(Bool(true), Obj(match))
	out, _ = out.Put(Bool(false), Obj(rest))
	return out
}

// GroupBy buckets the entries by the discriminator's result. The outer Map
// is keyed mixed and valued Map; each bucket is a fresh sub-Map with the
// receiver's instantiation. The first use of a grouping key creates the
// bucket, a reuse fetches it, puts into it, and replaces it in the outer
// Map. Grouping an empty Map fails with *EmptyGroupError.
func (m *Map) GroupBy(fn func(key, value Value) Value) (*Map, error) {
	if m.Empty() {
		return nil, &EmptyGroupError{}
	}
	out, err := Of("mixed", "Map")
	if err != nil {
		panic("immutable: group result map: " + err.Error())
	}
	m.ForEach(func(k, v Value) {
		gk := fn(k, v)
		bucket := m.Clear()
		if out.Contains(gk) {
			existing, _ := out.Get(gk)
			bucket = existing.Data.(*Map)
		}
		next, perr := bucket.Put(k, v)
		if perr != nil {
			panic("immutable: group bucket rejected a conforming entry: " + perr.Error())
		}
		out, _ = out.Put(gk, Obj(next))
	})
	return out, nil
}
