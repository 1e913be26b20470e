// Package immutable implements persistent, runtime-type-checked generic
// collections — an associative Map, a Set, and an ordered Seq — for
// callers carrying dynamically-typed values.
//
// Every mutating operation returns a new collection instance; existing
// instances, and any references callers hold to them, are never observed
// to change. A Map declares a key and a value type descriptor at
// construction and validates every inbound element against them; object
// key types transparently select an identity-keyed storage strategy,
// every other key type an insertion-ordered one.
package immutable

// Version is the library release identifier reported by the workbench CLI.
const Version = "0.1.0"
