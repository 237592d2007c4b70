package format

import (
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
)

// indentDocument runs the line loop over src: classify, reindent,
// reflow attributes, extract inline styles. The post-loop expression
// passes and final newline policy live in Format.
//
// Raw bookkeeping is ordered deliberately: block openings are detected
// before classification so the opening line is still indented, and the
// raw flag is re-armed after emitting so the block body starting on the
// next line is reproduced verbatim. Closings are handled last so
// one-line raw blocks never leave raw mode set.
func indentDocument(p *config.Profile, s *Session, src string) string {
	st := NewState()
	indent := p.Indent()
	var out strings.Builder
	out.Grow(len(src) + len(src)/4)

	for line := range strings.SplitSeq(src, "\n") {
		if strings.TrimSpace(line) == "" && !st.Raw && !p.Cfg.PreserveBlankLines {
			continue
		}
		opening := IsIgnoredBlockOpening(p, line)
		if opening {
			if !st.Raw {
				st.RawFirstLine = true
			}
			st.EnterRaw()
		}
		if IsScriptStyleOpening(p, line) {
			st.InScriptStyle = true
		}
		if IsSafeClosing(p, line) {
			st.LeaveRaw()
		}

		tmp := emit(p, line, st, indent)

		if opening {
			st.Raw = true
			st.RawFirstLine = false
		} else if !st.Raw {
			tmp = reflowLineAttributes(p, tmp)
			tmp = ExtractInlineStyles(p, s, tmp)
		}

		if IsIgnoredBlockClosing(p, line) &&
			(!st.InScriptStyle || IsScriptStyleClosing(p, line)) {
			st.InScriptStyle = false
			if !IsSafeClosing(p, line) {
				st.RawDepth--
				if st.RawDepth < 0 {
					st.RawDepth = 0
				}
			}
			if st.RawDepth == 0 {
				st.Raw = false
			}
		}

		out.WriteString(tmp)
		out.WriteString("\n")
	}
	return out.String()
}

// emit renders one line at the level its category dictates and applies
// the category's state transition.
func emit(p *config.Profile, line string, st *State, indent string) string {
	stripped := strings.TrimSpace(line)
	at := func(level int) string {
		if level < 0 {
			level = 0
		}
		return strings.Repeat(indent, level) + stripped
	}

	switch Classify(p, line, st) {
	case CategoryPassthroughInline, CategorySingleLineTag, CategoryRawFirstLine:
		return at(st.IndentLevel)

	case CategorySetClose:
		st.Dedent()
		st.InSetTag = false
		return at(st.IndentLevel)

	case CategoryBracketClose:
		st.Dedent()
		return at(st.IndentLevel)

	case CategoryUnindent:
		if StartsWithInlinePair(p, stripped) {
			// Keep the leading inline block at the deeper level.
			tmp := at(st.IndentLevel)
			st.Dedent()
			return tmp
		}
		st.Dedent()
		return at(st.IndentLevel)

	case CategoryUnindentLine:
		return at(st.IndentLevel - 1)

	case CategorySetOpen:
		tmp := at(st.IndentLevel)
		st.IndentLevel++
		st.InSetTag = true
		return tmp

	case CategoryBracketOpen:
		tmp := at(st.IndentLevel)
		st.IndentLevel++
		return tmp

	case CategoryIndent:
		tmp := at(st.IndentLevel)
		st.IndentLevel++
		return tmp

	case CategoryRaw:
		return line

	default:
		if p.Cfg.PreserveLeadingSpace {
			return line
		}
		return at(st.IndentLevel)
	}
}
