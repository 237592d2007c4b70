package css

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	cssparse "github.com/tdewolff/parse/v2/css"
)

var ruleBlockRe = regexp.MustCompile(`(?s)\.([a-zA-Z0-9_-]+)\s*\{(.*?)\}`)

// ParseRules extracts the class selector blocks of stylesheet text, in
// document order. Anything that is not a simple class block is skipped;
// the generated stylesheet contains nothing else.
func ParseRules(src string) []Rule {
	var rules []Rule
	for _, m := range ruleBlockRe.FindAllStringSubmatch(src, -1) {
		rules = append(rules, Rule{Class: m[1], Style: strings.TrimSpace(m[2])})
	}
	return rules
}

// Normalize canonicalizes a declaration list so equivalent styles
// compare equal: comments and whitespace dropped, tokens lowercased,
// declarations sorted, separators normalized.
func Normalize(style string) string {
	var decls []string
	var cur []string
	flush := func() {
		if len(cur) == 0 {
			return
		}
		d := strings.Join(cur, " ")
		d = strings.ReplaceAll(d, " : ", ": ")
		d = strings.ReplaceAll(d, " , ", ", ")
		decls = append(decls, d)
		cur = nil
	}

	l := cssparse.NewLexer(parse.NewInputString(style))
	for {
		tt, data := l.Next()
		if tt == cssparse.ErrorToken {
			break
		}
		switch tt {
		case cssparse.WhitespaceToken, cssparse.CommentToken:
		case cssparse.SemicolonToken:
			flush()
		default:
			cur = append(cur, strings.ToLower(string(data)))
		}
	}
	flush()
	sort.Strings(decls)
	return strings.Join(decls, "; ")
}

// Compare maps each class of a onto the first class of b carrying an
// equivalent declaration list. Classes with no counterpart are absent
// from the result.
func Compare(a, b []Rule) map[string]string {
	byStyle := make(map[string]string, len(b))
	for _, r := range b {
		key := Normalize(r.Style)
		if _, ok := byStyle[key]; !ok {
			byStyle[key] = r.Class
		}
	}
	out := make(map[string]string)
	for _, r := range a {
		if cls, ok := byStyle[Normalize(r.Style)]; ok {
			out[r.Class] = cls
		}
	}
	return out
}
