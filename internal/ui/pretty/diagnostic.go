package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/lint"
)

// FormatDiagnostic formats a single lint finding for terminal output.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d",
		s.FilePath.Render(diag.FilePath),
		diag.Line,
	)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s",
		location,
		s.Warning.Render(diag.Code),
		s.Message.Render(diag.Message),
	))
	if diag.Match != "" {
		builder.WriteString("  " + s.Match.Render(fmt.Sprintf("%q", diag.Match)))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, findingCount int) string {
	header := s.FilePath.Render(path)
	if findingCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d findings)", findingCount))
	}
	return header
}
