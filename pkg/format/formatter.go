package format

import (
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
)

// Format runs the full pipeline over one document: line-ending
// normalization, tag compression and expansion, the indent loop with
// attribute reflow and style extraction, and the expression post-passes.
// Documents that arrived with CRLF endings leave with CRLF endings.
func Format(p *config.Profile, s *Session, src string) string {
	crlf := strings.Contains(src, "\r\n")
	if crlf {
		src = strings.ReplaceAll(src, "\r\n", "\n")
	}

	if !p.Cfg.PreserveLeadingSpace {
		src = compressTags(p, src)
		src = normalizeTagSpacing(p, src)
		src = expandTags(p, src)
	}
	src = indentDocument(p, s, src)
	src = FormatSetTags(p, src)
	src = FormatFunctions(p, src)

	if !p.Cfg.PreserveBlankLines {
		src = strings.TrimLeft(src, "\n")
	}
	src = strings.TrimRight(src, " \t\n") + "\n"

	if crlf {
		src = strings.ReplaceAll(src, "\n", "\r\n")
	}
	return src
}
