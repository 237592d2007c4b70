package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/runner"
)

// FormatSummaryOneLine renders the run statistics as a single line.
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	parts := []string{
		fmt.Sprintf("%d files", stats.FilesProcessed),
	}
	if stats.FilesChanged > 0 {
		parts = append(parts, fmt.Sprintf("%d reformatted", stats.FilesChanged))
	}
	if stats.FindingsTotal > 0 {
		parts = append(parts, fmt.Sprintf("%d findings in %d files",
			stats.FindingsTotal, stats.FilesWithFindings))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", stats.FilesSkipped))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d errors", stats.FilesErrored)))
	}

	line := strings.Join(parts, ", ")
	if stats.FilesErrored == 0 && stats.FindingsTotal == 0 && stats.FilesChanged == 0 {
		return s.Success.Render("✓ "+line) + "\n"
	}
	return s.SummaryTitle.Render(line) + "\n"
}
