// literal.go: the workbench's tiny token and literal reader.
//
// A command line is a verb followed by words and literals. Literals cover
// the value surface of the library: null, true/false, integers, floats,
// quoted strings (with backslash escapes), and bracketed arrays.
package main

import (
	"fmt"
	"strconv"
	"strings"

	immutable "github.com/open-source-contributions/immutable"
)

type tokenKind int

const (
	tokWord tokenKind = iota
	tokString
	tokLBrack
	tokRBrack
	tokComma
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(line string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '[':
			toks = append(toks, token{kind: tokLBrack, text: "["})
			i++
		case c == ']':
			toks = append(toks, token{kind: tokRBrack, text: "]"})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, text: ","})
			i++
		case c == '"':
			text, next, err := readString(line, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokString, text: text})
			i = next
		default:
			j := i
			for j < len(line) && !strings.ContainsRune(" \t[],\"", rune(line[j])) {
				j++
			}
			toks = append(toks, token{kind: tokWord, text: line[i:j]})
			i = j
		}
	}
	return toks, nil
}

func readString(line string, start int) (string, int, error) {
	var b strings.Builder
	i := start + 1
	for i < len(line) {
		c := line[i]
		if c == '\\' {
			if i+1 >= len(line) {
				return "", 0, fmt.Errorf("unterminated escape in string")
			}
			switch line[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			default:
				return "", 0, fmt.Errorf("unknown escape \\%c", line[i+1])
			}
			i += 2
			continue
		}
		if c == '"' {
			return b.String(), i + 1, nil
		}
		b.WriteByte(c)
		i++
	}
	return "", 0, fmt.Errorf("unterminated string")
}

// parseValue reads one literal from the front of toks and returns the
// remaining tokens.
func parseValue(toks []token) (immutable.Value, []token, error) {
	if len(toks) == 0 {
		return immutable.Null, nil, fmt.Errorf("expected a value")
	}
	t := toks[0]
	switch t.kind {
	case tokString:
		return immutable.Str(t.text), toks[1:], nil
	case tokLBrack:
		return parseArray(toks[1:])
	case tokWord:
		switch t.text {
		case "null":
			return immutable.Null, toks[1:], nil
		case "true":
			return immutable.Bool(true), toks[1:], nil
		case "false":
			return immutable.Bool(false), toks[1:], nil
		}
		if n, err := strconv.ParseInt(t.text, 10, 64); err == nil {
			return immutable.Int(n), toks[1:], nil
		}
		if f, err := strconv.ParseFloat(t.text, 64); err == nil {
			return immutable.Num(f), toks[1:], nil
		}
		return immutable.Null, nil, fmt.Errorf("not a literal: %q", t.text)
	default:
		return immutable.Null, nil, fmt.Errorf("unexpected %q", t.text)
	}
}

func parseArray(toks []token) (immutable.Value, []token, error) {
	var items []immutable.Value
	for {
		if len(toks) == 0 {
			return immutable.Null, nil, fmt.Errorf("unterminated array")
		}
		if toks[0].kind == tokRBrack {
			return immutable.Arr(items), toks[1:], nil
		}
		v, rest, err := parseValue(toks)
		if err != nil {
			return immutable.Null, nil, err
		}
		items = append(items, v)
		toks = rest
		if len(toks) > 0 && toks[0].kind == tokComma {
			toks = toks[1:]
		}
	}
}
