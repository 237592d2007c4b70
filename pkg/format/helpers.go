package format

import (
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
)

// IsIgnoredBlockOpening reports whether line opens a raw block that is
// not closed again on the same line. An opening followed by its closing
// (a one-line raw block) does not count, so raw mode is never left set
// for subsequent lines.
func IsIgnoredBlockOpening(p *config.Profile, line string) bool {
	// An off-directive comment closes its own comment syntax but still
	// opens the disabled region; the matching on-directive ends it.
	if strings.Contains(line, "gotplfmt:off") {
		return true
	}
	from := 0
	for _, loc := range p.IgnoredClose.FindAllStringIndex(line, -1) {
		from = loc[1]
	}
	loc := p.IgnoredOpen.FindStringIndex(line[from:])
	if loc == nil {
		return false
	}
	// The on-marker shares the comment syntax with plain raw comments
	// but re-enables formatting instead of disabling it.
	match := line[from+loc[0]:]
	return !isOnDirective(match)
}

// IsIgnoredBlockClosing reports whether line closes a raw block, i.e. a
// closing marker appears after the last opening on the line. The closing
// delimiter of an off-directive comment does not count: the region it
// opens runs until the matching on-directive.
func IsIgnoredBlockClosing(p *config.Profile, line string) bool {
	from := 0
	for _, loc := range p.IgnoredOpen.FindAllStringIndex(line, -1) {
		from = loc[1]
	}
	if i := strings.LastIndex(line, "gotplfmt:off"); i >= 0 && i+len("gotplfmt:off") > from {
		from = i + len("gotplfmt:off")
		if loc := p.IgnoredClose.FindStringIndex(line[from:]); loc != nil {
			from += loc[1]
		}
	}
	return p.IgnoredClose.MatchString(line[from:])
}

// IsScriptStyleOpening reports whether line opens a script or style
// block without closing it on the same line.
func IsScriptStyleOpening(p *config.Profile, line string) bool {
	from := 0
	for _, loc := range p.ScriptStyleClose.FindAllStringIndex(line, -1) {
		from = loc[1]
	}
	return p.ScriptStyleOpen.MatchString(line[from:])
}

// IsScriptStyleClosing reports whether line closes a script or style
// block.
func IsScriptStyleClosing(p *config.Profile, line string) bool {
	from := 0
	for _, loc := range p.ScriptStyleOpen.FindAllStringIndex(line, -1) {
		from = loc[1]
	}
	return p.ScriptStyleClose.MatchString(line[from:])
}

// IsSafeClosing reports whether line starts with a closing marker that
// ends a raw region but is itself indented normally (script/style/pre/
// textarea closers, formatter on-directives, endraw and friends).
func IsSafeClosing(p *config.Profile, line string) bool {
	return p.SafeClosing.MatchString(line)
}

func isOnDirective(s string) bool {
	head := s
	if len(head) > 40 {
		head = head[:40]
	}
	return strings.Contains(head, "gotplfmt:on")
}

// RawSpans returns the byte ranges of src covered by raw/ignored
// regions, including one-line raw constructs. Post-passes and lint
// suppression use it to leave those regions untouched.
func RawSpans(p *config.Profile, src string) [][2]int {
	var spans [][2]int
	offset := 0
	open := -1
	for _, line := range strings.SplitAfter(src, "\n") {
		switch {
		case open < 0 && IsIgnoredBlockOpening(p, line):
			open = offset
		case open < 0:
			// One-line raw constructs still suppress matches inside them.
			for _, loc := range p.IgnoredInline.FindAllStringIndex(line, -1) {
				spans = append(spans, [2]int{offset + loc[0], offset + loc[1]})
			}
		case IsIgnoredBlockClosing(p, line):
			spans = append(spans, [2]int{open, offset + len(line)})
			open = -1
		}
		offset += len(line)
	}
	if open >= 0 {
		spans = append(spans, [2]int{open, len(src)})
	}
	return spans
}

// InSpans reports whether the half-open range [start, end) overlaps any
// of the given spans.
func InSpans(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}
