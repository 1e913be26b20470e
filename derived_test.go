package immutable

import (
	"errors"
	"testing"
)

func Test_Derived_Merge_RightBiased(t *testing.T) {
	a := mustOf(t, "int", "string")
	a = mustPut(t, a, Int(1), Str("a1"))
	a = mustPut(t, a, Int(2), Str("a2"))

	b := mustOf(t, "int", "string")
	b = mustPut(t, b, Int(2), Str("b2"))
	b = mustPut(t, b, Int(3), Str("b3"))

	merged, err := a.Merge(b)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if merged.Size() != 3 {
		t.Fatalf("merged size = %d, want 3", merged.Size())
	}
	if got := mustGet(t, merged, Int(2)); !Equal(got, Str("b2")) {
		t.Fatalf("merge must be right-biased, got %s", FormatValue(got))
	}
	if got := mustGet(t, merged, Int(1)); !Equal(got, Str("a1")) {
		t.Fatalf("left-only entries must survive, got %s", FormatValue(got))
	}

	// Neither operand is affected.
	if a.Size() != 2 || b.Size() != 2 {
		t.Fatalf("merge mutated an operand")
	}
}

func Test_Derived_Merge_Rejects_Other_Instantiation(t *testing.T) {
	a := mustOf(t, "int", "string")
	b := mustOf(t, "string", "string")
	var ce *ConstructionError
	if _, err := a.Merge(b); !errors.As(err, &ce) {
		t.Fatalf("want *ConstructionError, got %#v", err)
	}
}

func Test_Derived_Merge_Identity(t *testing.T) {
	p := newPoint(1, 1)
	q := newPoint(2, 2)

	a := mustPut(t, mustOf(t, "Point", "string"), Obj(p), Str("a"))
	b := mustOf(t, "Point", "string")
	b = mustPut(t, b, Obj(p), Str("b"))
	b = mustPut(t, b, Obj(q), Str("q"))

	merged, err := a.Merge(b)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if merged.Size() != 2 {
		t.Fatalf("merged size = %d, want 2", merged.Size())
	}
	if got := mustGet(t, merged, Obj(p)); !Equal(got, Str("b")) {
		t.Fatalf("same-identity entry should take the right value, got %s", FormatValue(got))
	}
}

func Test_Derived_Partition(t *testing.T) {
	m := mustOf(t, "int", "int")
	for i := int64(1); i <= 5; i++ {
		m = mustPut(t, m, Int(i), Int(i))
	}
	parts := m.Partition(func(k, _ Value) bool { return k.Data.(int64)%2 == 0 })

	if parts.Size() != 2 {
		t.Fatalf("partition result should have the two bool entries, size = %d", parts.Size())
	}
	evenV := mustGet(t, parts, Bool(true))
	oddV := mustGet(t, parts, Bool(false))
	even := evenV.Data.(*Map)
	odd := oddV.Data.(*Map)

	if even.Size() != 2 || odd.Size() != 3 {
		t.Fatalf("split sizes = %d/%d, want 2/3", even.Size(), odd.Size())
	}
	if even.KeyType() != "int" || even.ValueType() != "int" {
		t.Fatalf("sub-maps must share the source instantiation")
	}
	if !even.Contains(Int(2)) || !even.Contains(Int(4)) || even.Contains(Int(1)) {
		t.Fatalf("even bucket wrong: %s", FormatValue(Obj(even)))
	}
}

func Test_Derived_Partition_Empty(t *testing.T) {
	parts := mustOf(t, "int", "int").Partition(func(_, _ Value) bool { return true })
	even := mustGet(t, parts, Bool(true)).Data.(*Map)
	odd := mustGet(t, parts, Bool(false)).Data.(*Map)
	if !even.Empty() || !odd.Empty() {
		t.Fatalf("partitioning an empty map yields two empty sub-maps")
	}
}

func Test_Derived_GroupBy(t *testing.T) {
	m := mustOf(t, "string", "int")
	m = mustPut(t, m, Str("ant"), Int(3))
	m = mustPut(t, m, Str("bee"), Int(3))
	m = mustPut(t, m, Str("crow"), Int(4))

	groups, err := m.GroupBy(func(_, v Value) Value { return v })
	if err != nil {
		t.Fatalf("GroupBy error: %v", err)
	}
	if groups.Size() != 2 {
		t.Fatalf("group count = %d, want 2", groups.Size())
	}

	threes := mustGet(t, groups, Int(3)).Data.(*Map)
	fours := mustGet(t, groups, Int(4)).Data.(*Map)
	if threes.Size() != 2 || fours.Size() != 1 {
		t.Fatalf("bucket sizes = %d/%d, want 2/1", threes.Size(), fours.Size())
	}
	if threes.KeyType() != "string" || threes.ValueType() != "int" {
		t.Fatalf("buckets must share the source instantiation")
	}
	if !threes.Contains(Str("ant")) || !threes.Contains(Str("bee")) {
		t.Fatalf("bucket 3 wrong: %s", FormatValue(Obj(threes)))
	}
	if m.Size() != 3 {
		t.Fatalf("grouping mutated the source")
	}
}

func Test_Derived_GroupBy_Empty_Fails(t *testing.T) {
	m := mustOf(t, "int", "int")
	_, err := m.GroupBy(func(_, v Value) Value { return v })
	var eg *EmptyGroupError
	if !errors.As(err, &eg) {
		t.Fatalf("want *EmptyGroupError, got %#v", err)
	}
}

func Test_Derived_GroupBy_Identity_Source(t *testing.T) {
	m := mustOf(t, "Point", "int")
	m = mustPut(t, m, Obj(newPoint(1, 0)), Int(1))
	m = mustPut(t, m, Obj(newPoint(2, 0)), Int(2))
	m = mustPut(t, m, Obj(newPoint(3, 0)), Int(1))

	groups, err := m.GroupBy(func(_, v Value) Value { return v })
	if err != nil {
		t.Fatalf("GroupBy error: %v", err)
	}
	ones := mustGet(t, groups, Int(1)).Data.(*Map)
	if ones.Size() != 2 {
		t.Fatalf("identity-backed bucket size = %d, want 2", ones.Size())
	}
	if ones.KeyType() != "Point" {
		t.Fatalf("bucket key type = %s, want Point", ones.KeyType())
	}
}
