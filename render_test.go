package immutable

import (
	"strings"
	"testing"
)

func Test_Render_Scalars(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Null, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Int(42), "42"},
		{Num(1.5), "1.5"},
		{Num(2), "2.0"}, // floats always show a fractional form
		{Str("hi"), `"hi"`},
		{Str("a\"b"), `"a\"b"`},
		{Arr([]Value{Int(1), Str("x")}), `[ 1, "x" ]`},
		{Arr(nil), "[]"},
	}
	for _, c := range cases {
		if got := FormatValue(c.v); got != c.want {
			t.Errorf("FormatValue = %q, want %q", got, c.want)
		}
	}
}

func Test_Render_Record(t *testing.T) {
	p := newPoint(1, 2)
	got := FormatValue(Obj(p))
	if got != "Point{ x: 1, y: 2 }" {
		t.Fatalf("record rendering = %q", got)
	}
}

func Test_Render_Collections(t *testing.T) {
	m := mustOf(t, "int", "string")
	m = mustPut(t, m, Int(1), Str("a"))
	m = mustPut(t, m, Int(2), Str("b"))
	if got := FormatValue(Obj(m)); got != `Map<int, string>{ 1: "a", 2: "b" }` {
		t.Fatalf("map rendering = %q", got)
	}

	if got := FormatValue(Obj(NewSeq(Int(1), Int(2)))); got != "Seq[ 1, 2 ]" {
		t.Fatalf("seq rendering = %q", got)
	}
	if got := FormatValue(Obj(NewSet(Str("a")))); got != `Set{ "a" }` {
		t.Fatalf("set rendering = %q", got)
	}
	if got := FormatValue(Obj(mustOf(t, "int", "int"))); got != "Map<int, int>{}" {
		t.Fatalf("empty map rendering = %q", got)
	}
}

func Test_Render_Wide_Composites_Go_Multiline(t *testing.T) {
	old := MaxInlineWidth
	MaxInlineWidth = 10
	defer func() { MaxInlineWidth = old }()

	got := FormatValue(Arr([]Value{Str("abcdef"), Str("ghijkl")}))
	if !strings.Contains(got, "\n") {
		t.Fatalf("wide array should wrap, got %q", got)
	}
	if !strings.HasPrefix(got, "[\n") || !strings.HasSuffix(got, "\n]") {
		t.Fatalf("wrapped form = %q", got)
	}
}
