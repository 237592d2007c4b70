package lint

import (
	"regexp"
	"strings"
)

// Inline suppression. A gotplfmt:off directive silences findings until
// the next gotplfmt:on; both may carry a code list to silence only
// those rules. gotplfmt:ignore silences its own line.

var (
	offDirective    = regexp.MustCompile(`gotplfmt:off((?:[ \t]+[A-Za-z][A-Za-z0-9]+,?)*)`)
	onDirective     = regexp.MustCompile(`gotplfmt:on\b`)
	ignoreDirective = regexp.MustCompile(`gotplfmt:ignore((?:[ \t]+[A-Za-z][A-Za-z0-9]+,?)*)`)
)

type ignoreSpan struct {
	start, end int             // 1-based lines, inclusive; end 0 means EOF
	codes      map[string]bool // nil silences every rule
}

type suppressor struct {
	spans []ignoreSpan
	lines map[int]map[string]bool
}

func newSuppressor(source string) *suppressor {
	s := &suppressor{lines: make(map[int]map[string]bool)}
	open := -1
	var openCodes map[string]bool
	for i, line := range strings.Split(source, "\n") {
		n := i + 1
		if m := ignoreDirective.FindStringSubmatch(line); m != nil {
			s.lines[n] = codeSet(m[1])
		}
		switch {
		case open < 0:
			if m := offDirective.FindStringSubmatch(line); m != nil {
				open = n
				openCodes = codeSet(m[1])
			}
		case onDirective.MatchString(line):
			s.spans = append(s.spans, ignoreSpan{start: open, end: n, codes: openCodes})
			open = -1
		}
	}
	if open >= 0 {
		s.spans = append(s.spans, ignoreSpan{start: open, codes: openCodes})
	}
	return s
}

// codeSet parses an optional directive code list; empty input means
// every rule.
func codeSet(list string) map[string]bool {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) == 0 {
		return nil
	}
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[strings.ToUpper(f)] = true
	}
	return set
}

func (s *suppressor) suppressed(code string, line int) bool {
	if codes, ok := s.lines[line]; ok && (codes == nil || codes[code]) {
		return true
	}
	for _, span := range s.spans {
		if line < span.start || (span.end != 0 && line > span.end) {
			continue
		}
		if span.codes == nil || span.codes[code] {
			return true
		}
	}
	return false
}
