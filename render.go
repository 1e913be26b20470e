// render.go: human-friendly rendering of values and collections.
//
// FormatValue prints a Value the way the workbench REPL (and error
// messages) show it: scalars inline, short composites on one line, longer
// ones indented across lines. Output is plain text; the REPL adds color.
package immutable

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// MaxInlineWidth is the width threshold below which arrays, records and
// collections render on a single line.
var MaxInlineWidth = 80

// FormatValue returns a rendering of v with width awareness.
func FormatValue(v Value) string {
	var b strings.Builder
	writeValue(&b, v, 0)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, depth int) {
	switch v.Tag {
	case VTNull:
		b.WriteString("null")
	case VTBool:
		if v.Data.(bool) {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case VTInt:
		b.WriteString(strconv.FormatInt(v.Data.(int64), 10))
	case VTNum:
		s := strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		b.WriteString(s)
	case VTStr:
		b.WriteString(quoteString(v.Data.(string)))
	case VTArray:
		writeComposite(b, "[", "]", arrayParts(v.Data.([]Value)), depth)
	case VTObject:
		writeObject(b, v.Data.(Object), depth)
	default:
		b.WriteString("<unknown>")
	}
}

func arrayParts(xs []Value) []string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = FormatValue(x)
	}
	return parts
}

func writeObject(b *strings.Builder, o Object, depth int) {
	switch ov := o.(type) {
	case *Record:
		parts := make([]string, 0, len(ov.Fields))
		for _, name := range sortedFieldNames(ov) {
			key := name
			if !isIdent(key) {
				key = quoteString(key)
			}
			parts = append(parts, key+": "+FormatValue(ov.Fields[name]))
		}
		writeComposite(b, ov.Class.Name+"{", "}", parts, depth)
	case *Map:
		parts := make([]string, 0, ov.Size())
		ov.ForEach(func(k, v Value) {
			parts = append(parts, FormatValue(k)+": "+FormatValue(v))
		})
		head := fmt.Sprintf("Map<%s, %s>{", ov.KeyType(), ov.ValueType())
		writeComposite(b, head, "}", parts, depth)
	case *Seq:
		parts := make([]string, 0, ov.Size())
		ov.ForEach(func(_ int, v Value) {
			parts = append(parts, FormatValue(v))
		})
		writeComposite(b, "Seq[", "]", parts, depth)
	case *Set:
		parts := make([]string, 0, ov.Size())
		ov.ForEach(func(v Value) {
			parts = append(parts, FormatValue(v))
		})
		writeComposite(b, "Set{", "}", parts, depth)
	default:
		b.WriteString("<" + o.ClassName() + ">")
	}
}

// writeComposite renders open..close around parts, inline when the result
// fits MaxInlineWidth and no part spans lines, indented otherwise.
func writeComposite(b *strings.Builder, open, closing string, parts []string, depth int) {
	if len(parts) == 0 {
		b.WriteString(open + closing)
		return
	}
	oneline := open + " " + strings.Join(parts, ", ") + " " + closing
	multiline := false
	for _, p := range parts {
		if strings.Contains(p, "\n") {
			multiline = true
			break
		}
	}
	if !multiline && len(oneline) <= MaxInlineWidth {
		b.WriteString(oneline)
		return
	}
	pad := strings.Repeat("  ", depth+1)
	b.WriteString(open + "\n")
	for i, p := range parts {
		b.WriteString(pad)
		b.WriteString(strings.ReplaceAll(p, "\n", "\n"+pad))
		if i < len(parts)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("  ", depth) + closing)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	rs := []rune(s)
	if !(unicode.IsLetter(rs[0]) || rs[0] == '_') {
		return false
	}
	for _, r := range rs[1:] {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
