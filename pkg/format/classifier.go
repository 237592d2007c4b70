package format

import (
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
)

// Category is the transition class assigned to one source line. The
// values are ordered by priority: classification walks them top to
// bottom and the first match wins, because several categories overlap
// by construction.
type Category int

const (
	// CategoryPassthroughInline is a complete one-line raw construct.
	CategoryPassthroughInline Category = iota
	// CategorySingleLineTag is a construct fully contained on the line.
	CategorySingleLineTag
	// CategorySetClose ends a set pseudo-scope.
	CategorySetClose
	// CategoryBracketClose is a bare } or ] inside a set scope.
	CategoryBracketClose
	// CategoryUnindent moves the level left.
	CategoryUnindent
	// CategoryUnindentLine dedents this line only, without mutating
	// the persisted level.
	CategoryUnindentLine
	// CategorySetOpen starts a set pseudo-scope.
	CategorySetOpen
	// CategoryBracketOpen is a trailing { or [ inside a set scope.
	CategoryBracketOpen
	// CategoryIndent moves the level right after emitting.
	CategoryIndent
	// CategoryRawFirstLine is a raw block's opening line or a safe
	// closing tag: emitted at the current level, level untouched.
	CategoryRawFirstLine
	// CategoryRaw is raw-block content or a blank line: emitted
	// verbatim.
	CategoryRaw
	// CategoryDefault emits at the current level (or verbatim when
	// leading space is preserved).
	CategoryDefault
)

// Classify decides which transition category line belongs to, given the
// ambient state. Every line falls into some category; there is no
// failure mode.
func Classify(p *config.Profile, line string, st *State) Category {
	stripped := strings.TrimSpace(line)
	cfg := p.Cfg

	switch {
	case !st.Raw && p.IgnoredInline.MatchString(line):
		return CategoryPassthroughInline

	case !st.Raw && IsSingleLineTag(p, stripped):
		return CategorySingleLineTag

	case !cfg.NoSetFormatting && st.InSetTag && !st.Raw && hasCloseWithoutOpen(stripped):
		return CategorySetClose

	case !cfg.NoSetFormatting && st.InSetTag && !st.Raw && startsWithClosingBracket(stripped):
		return CategoryBracketClose

	case !st.Raw && matchesUnindent(p, stripped) && !IsSafeClosing(p, line) &&
		!endsWithInlinePair(p, stripped):
		return CategoryUnindent

	case !st.Raw && p.TemplateUnindentLine != nil && p.TemplateUnindentLine.MatchString(stripped):
		return CategoryUnindentLine

	case !cfg.NoSetFormatting && !st.Raw && !st.InSetTag && isSetOpening(p, stripped):
		return CategorySetOpen

	case !cfg.NoSetFormatting && st.InSetTag && !st.Raw && hasUnclosedOpenBracket(stripped):
		return CategoryBracketOpen

	case !st.Raw && matchesIndent(p, stripped):
		return CategoryIndent

	case st.RawFirstLine || (IsSafeClosing(p, line) && !st.Raw):
		return CategoryRawFirstLine

	case st.Raw || stripped == "":
		return CategoryRaw

	default:
		return CategoryDefault
	}
}

func matchesIndent(p *config.Profile, stripped string) bool {
	if p.HTMLOpen.MatchString(stripped) {
		return true
	}
	return p.TemplateIndent != nil && p.TemplateIndent.MatchString(stripped)
}

func matchesUnindent(p *config.Profile, stripped string) bool {
	if p.HTMLClose.MatchString(stripped) {
		return true
	}
	return p.TemplateUnindent != nil && p.TemplateUnindent.MatchString(stripped)
}

func isSetOpening(p *config.Profile, stripped string) bool {
	return p.SetOpen != nil && p.SetOpen.MatchString(stripped) &&
		!strings.Contains(stripped, "%}")
}

// hasCloseWithoutOpen reports a trailing template-expression close with
// no matching open on the same line.
func hasCloseWithoutOpen(stripped string) bool {
	return strings.Contains(stripped, "%}") && !strings.Contains(stripped, "{%")
}

func startsWithClosingBracket(stripped string) bool {
	return strings.HasPrefix(stripped, "}") || strings.HasPrefix(stripped, "]")
}

// hasUnclosedOpenBracket reports a trailing { or [ that is not closed
// later on the line. Template delimiters ({{, {%) do not count.
func hasUnclosedOpenBracket(stripped string) bool {
	if i := strings.LastIndex(stripped, "{"); i >= 0 && i > strings.LastIndex(stripped, "}") {
		rest := stripped[i+1:]
		if !strings.HasPrefix(rest, "%") && !strings.HasPrefix(rest, "{") {
			return true
		}
	}
	if i := strings.LastIndex(stripped, "["); i >= 0 && i > strings.LastIndex(stripped, "]") {
		return true
	}
	return false
}

// StartsWithInlinePair reports whether stripped begins with a balanced
// open/close pair of a structural element. An unindent line that starts
// with such a pair keeps its trailing inline block at the deeper level,
// so the engine decrements after emitting instead of before.
func StartsWithInlinePair(p *config.Profile, stripped string) bool {
	if !strings.HasPrefix(stripped, "<") {
		return false
	}
	_, ok := consumeElementPair(p, stripped, true)
	return ok
}

// endsWithInlinePair reports whether stripped contains a balanced
// element pair followed only by plain text to end of line. Such lines
// are exempt from the unindent category.
func endsWithInlinePair(p *config.Profile, stripped string) bool {
	for i := 1; i < len(stripped); i++ {
		if stripped[i] != '<' || i+1 >= len(stripped) || !isTagNameStart(stripped[i+1]) {
			continue
		}
		if rest, ok := consumeElementPair(p, stripped[i:], true); ok && !strings.Contains(rest, "<") {
			return true
		}
	}
	return false
}

func isTagNameStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
