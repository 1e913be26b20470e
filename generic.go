// generic.go
//
// MapOf is the statically-typed convenience layer over the dynamic Map
// facade, for scalar instantiations. The dynamic-descriptor Map stays the
// canonical surface (the library exists to emulate generics for a host
// without them); MapOf collapses the runtime checks into compile-time
// ones where Go's own generics suffice.
//
// Scalar is an exact union, not a ~-constraint: argument translation uses
// a runtime type switch, which only sees exact types.
package immutable

// Scalar enumerates the Go types MapOf can carry.
type Scalar interface {
	bool | int | int64 | float64 | string
}

// MapOf is a compile-time typed view of a scalar-keyed Map.
type MapOf[K, V Scalar] struct {
	m *Map
}

// NewMapOf builds an empty typed map for K and V.
func NewMapOf[K, V Scalar]() MapOf[K, V] {
	var k K
	var v V
	m, err := Of(descriptorFor(any(k)), descriptorFor(any(v)))
	if err != nil {
		panic("immutable: scalar descriptor rejected: " + err.Error())
	}
	return MapOf[K, V]{m: m}
}

// Put returns a typed map in which key maps to value. The descriptors are
// satisfied by construction, so no error surface is needed.
func (t MapOf[K, V]) Put(key K, value V) MapOf[K, V] {
	next, err := t.m.Put(scalarValue(any(key)), scalarValue(any(value)))
	if err != nil {
		panic("immutable: typed put rejected: " + err.Error())
	}
	return MapOf[K, V]{m: next}
}

// Get returns the value under key, or false when absent.
func (t MapOf[K, V]) Get(key K) (V, bool) {
	v, err := t.m.Get(scalarValue(any(key)))
	if err != nil {
		var zero V
		return zero, false
	}
	return scalarFrom[V](v), true
}

func (t MapOf[K, V]) Contains(key K) bool {
	return t.m.Contains(scalarValue(any(key)))
}

// Remove returns a typed map without key; removing an absent key is a
// no-op.
func (t MapOf[K, V]) Remove(key K) MapOf[K, V] {
	next, err := t.m.Remove(scalarValue(any(key)))
	if err != nil {
		panic("immutable: typed remove rejected: " + err.Error())
	}
	return MapOf[K, V]{m: next}
}

func (t MapOf[K, V]) Size() int { return t.m.Size() }

// Keys returns the keys in insertion order.
func (t MapOf[K, V]) Keys() []K {
	out := make([]K, 0, t.m.Size())
	t.m.ForEach(func(k, _ Value) {
		out = append(out, scalarFrom[K](k))
	})
	return out
}

// Dynamic exposes the underlying dynamic Map (for the derived algorithms
// and interop with untyped callers).
func (t MapOf[K, V]) Dynamic() *Map { return t.m }

func descriptorFor(zero any) string {
	switch zero.(type) {
	case bool:
		return "bool"
	case int, int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	default:
		return "mixed"
	}
}

func scalarValue(x any) Value {
	switch xv := x.(type) {
	case bool:
		return Bool(xv)
	case int:
		return Int(int64(xv))
	case int64:
		return Int(xv)
	case float64:
		return Num(xv)
	case string:
		return Str(xv)
	default:
		return Null
	}
}

func scalarFrom[T Scalar](v Value) T {
	var zero T
	var out any
	switch any(zero).(type) {
	case bool:
		out = v.Data.(bool)
	case int:
		out = int(v.Data.(int64))
	case int64:
		out = v.Data.(int64)
	case float64:
		out = v.Data.(float64)
	case string:
		out = v.Data.(string)
	default:
		return zero
	}
	return out.(T)
}
