package cli

import (
	"testing"

	"github.com/yaklabco/gotplfmt/pkg/runner"
)

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	changed := &runner.Result{}
	changed.Stats.FilesChanged = 1

	findings := &runner.Result{}
	findings.Stats.FindingsTotal = 2

	errored := &runner.Result{}
	errored.Stats.FilesErrored = 1

	tests := []struct {
		name   string
		result *runner.Result
		check  bool
		want   int
	}{
		{name: "nil result", result: nil, want: ExitSuccess},
		{name: "clean run", result: &runner.Result{}, want: ExitSuccess},
		{name: "changes while writing", result: changed, want: ExitSuccess},
		{name: "changes in check mode", result: changed, check: true, want: ExitIssues},
		{name: "findings", result: findings, want: ExitIssues},
		{name: "errors", result: errored, want: ExitIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFromResult(tt.result, tt.check); got != tt.want {
				t.Errorf("ExitCodeFromResult() = %d, want %d", got, tt.want)
			}
		})
	}
}
