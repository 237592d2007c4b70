package format

import (
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
)

// Literal reformatting for set tags and function arguments. A literal
// that decodes as JSON is re-serialized with canonical spacing and
// sorted object keys, expanded across lines once the hosting tag grows
// past the line limit. Tuples of plain scalars are normalized in place.
// Anything else is collapsed to one line and left otherwise untouched.

// formatLiteral rewrites raw. lead is the hosting line's leading
// whitespace, prefixed to every continuation line; tagSize is the width
// already taken by the tag up to the literal.
func formatLiteral(p *config.Profile, lead string, tagSize int, raw string) string {
	trimmed := strings.TrimSpace(raw)

	if v, ok := decodeJSON(trimmed); ok {
		var b strings.Builder
		writeCompact(&b, v)
		compact := b.String()
		if tagSize+len(compact) < p.Cfg.MaxLineLength {
			return compact
		}
		b.Reset()
		writeIndent(&b, v, lead, p.Indent(), 0)
		return b.String()
	}

	if tuple, ok := formatTuple(trimmed); ok {
		return tuple
	}

	return strings.Join(strings.Fields(trimmed), " ")
}

// decodeJSON parses s as a single JSON value spanning the whole string.
// Numbers keep their source form.
func decodeJSON(s string) (any, bool) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return v, true
}

func writeCompact(b *strings.Builder, v any) {
	switch t := v.(type) {
	case map[string]any:
		b.WriteString("{")
		for i, k := range sortedKeys(t) {
			if i > 0 {
				b.WriteString(", ")
			}
			writeScalar(b, k)
			b.WriteString(": ")
			writeCompact(b, t[k])
		}
		b.WriteString("}")
	case []any:
		b.WriteString("[")
		for i, e := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeCompact(b, e)
		}
		b.WriteString("]")
	default:
		writeScalar(b, t)
	}
}

func writeIndent(b *strings.Builder, v any, lead, indent string, depth int) {
	inner := lead + strings.Repeat(indent, depth+1)
	outer := lead + strings.Repeat(indent, depth)
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for i, k := range sortedKeys(t) {
			if i > 0 {
				b.WriteString(",\n")
			}
			b.WriteString(inner)
			writeScalar(b, k)
			b.WriteString(": ")
			writeIndent(b, t[k], lead, indent, depth+1)
		}
		b.WriteString("\n" + outer + "}")
	case []any:
		if len(t) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, e := range t {
			if i > 0 {
				b.WriteString(",\n")
			}
			b.WriteString(inner)
			writeIndent(b, e, lead, indent, depth+1)
		}
		b.WriteString("\n" + outer + "]")
	default:
		writeScalar(b, t)
	}
}

func writeScalar(b *strings.Builder, v any) {
	switch t := v.(type) {
	case json.Number:
		b.WriteString(t.String())
	case string:
		data, _ := json.Marshal(t)
		b.Write(data)
	case bool:
		if t {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	default:
		b.WriteString("null")
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatTuple normalizes a comma-separated run of plain scalars,
// optionally parenthesized. Nested brackets or empty parts disqualify.
func formatTuple(s string) (string, bool) {
	inner := s
	wrapped := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	if wrapped {
		inner = s[1 : len(s)-1]
	}
	parts := splitTopLevel(inner, ',')
	if len(parts) < 2 {
		return "", false
	}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || strings.ContainsAny(part, "[]{}()") {
			return "", false
		}
		parts[i] = strings.Join(strings.Fields(part), " ")
	}
	out := strings.Join(parts, ", ")
	if wrapped {
		out = "(" + out + ")"
	}
	return out, true
}

// splitTopLevel splits s at sep, ignoring separators inside quotes or
// bracket pairs.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			cur.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			cur.WriteByte(c)
		case c == '(' || c == '[' || c == '{':
			depth++
			cur.WriteByte(c)
		case c == ')' || c == ']' || c == '}':
			if depth > 0 {
				depth--
			}
			cur.WriteByte(c)
		case c == sep && depth == 0:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())
	return parts
}
