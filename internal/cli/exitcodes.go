package cli

import "github.com/yaklabco/gotplfmt/pkg/runner"

// Exit codes for gotplfmt.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssues indicates the run completed but found changes or findings.
	ExitIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code from a run result.
// In check mode, would-be changes count as issues.
func ExitCodeFromResult(result *runner.Result, check bool) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasErrors() || result.HasFindings() {
		return ExitIssues
	}
	if check && result.HasChanges() {
		return ExitIssues
	}
	return ExitSuccess
}
