package format

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
)

// Post-pass reformatting of template expressions: set assignments and
// function calls. Both run over the indented document and skip raw
// regions. Dialects without a set construct (plain HTML, handlebars,
// the Go template syntax) are left alone.

var (
	setTagRe = regexp.MustCompile(`(?s)([ \t]*)(\{%-?\+?)[ \t]*set[ \t]+(.*?)[ \t]*(-?\+?%\})`)
	funcRe   = regexp.MustCompile(`(?s)([ \t]*)(\{\{-?\+?)[ \t]*([\w.]+)(\((?:"[^"]*"|'[^']*'|[^)])*\))[ \t]*((?:\[[^\]]*\]|\.[\w.]+)?)[ \t]*(-?\+?\}\})`)
)

// FormatSetTags rewrites {% set name = literal %} tags: single spacing
// around the assignment and a canonicalized literal, expanded across
// lines when the tag would exceed the line limit.
func FormatSetTags(p *config.Profile, src string) string {
	if p.Cfg.NoSetFormatting || p.SetOpen == nil {
		return src
	}
	spans := RawSpans(p, src)
	return rewriteMatches(src, setTagRe.FindAllStringSubmatchIndex(src, -1), spans, func(loc []int) (string, bool) {
		lead := src[loc[2]:loc[3]]
		open := src[loc[4]:loc[5]]
		body := strings.TrimSpace(src[loc[6]:loc[7]])
		close := src[loc[8]:loc[9]]

		name, value, ok := cutAssignment(body)
		if !ok {
			return lead + open + " set " + strings.Join(strings.Fields(body), " ") + " " + close, true
		}
		tagSize := len(lead) + len(open) + len(" set ") + len(name) + len(" = ") + 1 + len(close)
		literal := formatLiteral(p, lead, tagSize, value)
		return lead + open + " set " + name + " = " + literal + " " + close, true
	})
}

// FormatFunctions rewrites {{ name(args) }} expressions: single spacing
// inside the mustaches and normalized argument lists.
func FormatFunctions(p *config.Profile, src string) string {
	if p.Cfg.NoFunctionFormatting || p.SetOpen == nil {
		return src
	}
	spans := RawSpans(p, src)
	return rewriteMatches(src, funcRe.FindAllStringSubmatchIndex(src, -1), spans, func(loc []int) (string, bool) {
		lead := src[loc[2]:loc[3]]
		open := src[loc[4]:loc[5]]
		name := src[loc[6]:loc[7]]
		args := src[loc[8]:loc[9]]
		accessor := src[loc[10]:loc[11]]
		close := src[loc[12]:loc[13]]

		inner := strings.TrimSpace(args[1 : len(args)-1])
		if inner != "" {
			tagSize := len(lead) + len(open) + 1 + len(name) + 2 + len(accessor) + 1 + len(close)
			inner = formatLiteral(p, lead, tagSize, inner)
		}
		return lead + open + " " + name + "(" + inner + ")" + accessor + " " + close, true
	})
}

// cutAssignment splits a set body at the first top-level "=". The
// double equals of comparisons never splits.
func cutAssignment(body string) (name, value string, ok bool) {
	depth := 0
	var quote byte
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == '=' && depth == 0:
			if i+1 < len(body) && body[i+1] == '=' {
				i++
				continue
			}
			if i > 0 && (body[i-1] == '!' || body[i-1] == '<' || body[i-1] == '>') {
				continue
			}
			return strings.TrimSpace(body[:i]), strings.TrimSpace(body[i+1:]), true
		}
	}
	return "", "", false
}

// rewriteMatches splices replacements for the given match index sets
// into src, skipping matches that overlap a raw span.
func rewriteMatches(src string, locs [][]int, spans [][2]int, fn func(loc []int) (string, bool)) string {
	if len(locs) == 0 {
		return src
	}
	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, loc := range locs {
		if InSpans(spans, loc[0], loc[1]) {
			continue
		}
		rep, ok := fn(loc)
		if !ok {
			continue
		}
		b.WriteString(src[last:loc[0]])
		b.WriteString(rep)
		last = loc[1]
	}
	b.WriteString(src[last:])
	return b.String()
}
