package format

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
)

// Single-line-tag detection. A line is an SLT when its entire construct
// is contained on the line: an element open tag with its matching close
// tag, a void or self-closing element, a balanced template block pair,
// or a one-line raw construct. Several such units may follow each other
// separated by plain text, and a unit's body may hold one nested pair
// (the close-tag search is non-greedy, so same-name nesting is a
// deliberate fixed-depth concession, not full recursion).

var (
	sltOpenTag     = regexp.MustCompile(`(?i)^<([a-z][a-z0-9-]*)((?:"[^"]*"|'[^']*'|[^>"'])*?)(/?)>`)
	sltTemplateTag = regexp.MustCompile(`(?i)^\{%-?\+?[ \t]*([a-z][a-z0-9]*)\b[^}]*?%\}`)
	sltComment     = regexp.MustCompile(`(?i)^(?:<!--.*?-->|\{#.*?#\})`)
)

// IsSingleLineTag reports whether stripped is fully made of single-line
// constructs, optionally with plain text before, between, and after
// them, and no stray tags left over.
func IsSingleLineTag(p *config.Profile, stripped string) bool {
	if stripped == "" {
		return false
	}
	rest := stripped
	units := 0
	for {
		// Plain text up to the next construct.
		i := nextConstruct(rest)
		if i < 0 {
			break
		}
		rest = rest[i:]

		consumed, ok := consumeUnit(p, rest)
		if !ok {
			return false
		}
		rest = consumed
		units++
	}
	return units > 0 && !strings.Contains(rest, "<")
}

// nextConstruct returns the offset of the next tag-like construct, or
// -1 when only plain text remains.
func nextConstruct(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			if i+1 < len(s) && (isTagNameStart(s[i+1]) || s[i+1] == '!' || s[i+1] == '/') {
				return i
			}
		case '{':
			if i+1 < len(s) && (s[i+1] == '%' || s[i+1] == '#') {
				return i
			}
		}
	}
	return -1
}

// consumeUnit consumes one complete single-line construct at the start
// of s and returns the remainder.
func consumeUnit(p *config.Profile, s string) (string, bool) {
	if m := sltComment.FindString(s); m != "" {
		return s[len(m):], true
	}
	if strings.HasPrefix(s, "<") {
		return consumeElementPair(p, s, false)
	}
	if strings.HasPrefix(s, "{%") {
		return consumeTemplatePair(p, s)
	}
	return s, false
}

// consumeElementPair consumes an element at the start of s: either a
// void/self-closing tag, or an open tag together with its first
// matching close tag. When pairOnly is set, void elements do not count.
func consumeElementPair(p *config.Profile, s string, pairOnly bool) (string, bool) {
	m := sltOpenTag.FindStringSubmatch(s)
	if m == nil {
		return s, false
	}
	name := m[1]
	if !p.IsHTMLTag(name) && !p.IsVoidTag(name) {
		return s, false
	}
	if p.IsVoidTag(name) || m[3] == "/" {
		if pairOnly {
			return s, false
		}
		return s[len(m[0]):], true
	}
	body := s[len(m[0]):]
	close := "</" + strings.ToLower(name) + ">"
	idx := strings.Index(strings.ToLower(body), close)
	if idx < 0 {
		return s, false
	}
	return body[idx+len(close):], true
}

// consumeTemplatePair consumes a balanced {% tag %}...{% endtag %} pair
// whose tag name is on the profile's single-line allow-list.
func consumeTemplatePair(p *config.Profile, s string) (string, bool) {
	m := sltTemplateTag.FindStringSubmatch(s)
	if m == nil {
		return s, false
	}
	name := strings.ToLower(m[1])
	if !p.IsSLTTemplateTag(name) {
		return s, false
	}
	body := s[len(m[0]):]
	end := regexp.MustCompile(`(?i)\{%-?\+?[ \t]*end` + regexp.QuoteMeta(name) + `\b[^}]*?%\}`)
	loc := end.FindStringIndex(body)
	if loc == nil {
		return s, false
	}
	return body[loc[1]:], true
}
