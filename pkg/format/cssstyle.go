package format

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/yaklabco/gotplfmt/pkg/config"
)

// Inline-style extraction. A style attribute on a non-raw line is
// replaced by a generated class; the declaration goes into the
// session's rule table for the stylesheet writer. Styles containing
// template syntax are left alone, their value is not static CSS.

var (
	styleAttrRe = regexp.MustCompile(`(?i)[ \t]*\bstyle=(?:"([^"]*)"|'([^']*)')`)
	classAttrRe = regexp.MustCompile(`(?i)\bclass=(?:"([^"]*)"|'([^']*)')`)
)

// ExtractInlineStyles rewrites every tag on line that carries a static
// style attribute. A nil session disables extraction.
func ExtractInlineStyles(p *config.Profile, s *Session, line string) string {
	if s == nil || !strings.Contains(strings.ToLower(line), "style=") {
		return line
	}
	return p.TagMatch.ReplaceAllStringFunc(line, func(tag string) string {
		m := p.TagMatch.FindStringSubmatch(tag)
		if m[1] == "/" {
			return tag
		}
		attrs := m[3]
		sm := styleAttrRe.FindStringSubmatch(attrs)
		if sm == nil {
			return tag
		}
		style := strings.TrimSpace(sm[1] + sm[2])
		if style == "" || strings.ContainsAny(style, "{}") {
			return tag
		}

		class := s.ClassFor(style)
		attrs = styleAttrRe.ReplaceAllString(attrs, "")
		if loc := classAttrRe.FindStringSubmatchIndex(attrs); loc != nil {
			cm := classAttrRe.FindStringSubmatch(attrs)
			merged := mergeClasses(cm[1]+cm[2], class)
			attrs = attrs[:loc[0]] + `class="` + merged + `"` + attrs[loc[1]:]
		} else {
			// The minted class goes right after the tag name.
			attrs = ` class="` + class + `"` + attrs
		}
		return "<" + m[2] + attrs + m[4] + ">"
	})
}

// mergeClasses folds a minted class into an existing class list,
// deduplicated and sorted.
func mergeClasses(existing, class string) string {
	names := append(strings.Fields(existing), class)
	names = lo.Uniq(names)
	sort.Strings(names)
	return strings.Join(names, " ")
}
