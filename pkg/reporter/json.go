package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gotplfmt/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Findings []JSONFinding `json:"findings"`
	Changed  bool          `json:"changed,omitempty"`
	Written  bool          `json:"written,omitempty"`
	Skipped  bool          `json:"skipped,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// JSONFinding represents a single lint finding.
type JSONFinding struct {
	Code    string `json:"code"`
	Line    int    `json:"line"`
	Match   string `json:"match"`
	Message string `json:"message"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked      int `json:"filesChecked"`
	FilesChanged      int `json:"filesChanged"`
	FilesWritten      int `json:"filesWritten"`
	FilesSkipped      int `json:"filesSkipped"`
	FilesErrored      int `json:"filesErrored"`
	FilesWithFindings int `json:"filesWithFindings"`
	TotalFindings     int `json:"totalFindings"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}
	return output.Summary.TotalFindings, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}
	if result == nil {
		return output
	}

	output.Summary = JSONSummary{
		FilesChecked:      result.Stats.FilesProcessed,
		FilesChanged:      result.Stats.FilesChanged,
		FilesWritten:      result.Stats.FilesWritten,
		FilesSkipped:      result.Stats.FilesSkipped,
		FilesErrored:      result.Stats.FilesErrored,
		FilesWithFindings: result.Stats.FilesWithFindings,
		TotalFindings:     result.Stats.FindingsTotal,
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:     r.opts.displayPath(file.Path),
			Findings: make([]JSONFinding, 0, len(file.Diagnostics)),
			Changed:  file.Changed,
			Written:  file.Written,
			Skipped:  file.Skipped,
		}
		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}
		for _, diag := range file.Diagnostics {
			fileResult.Findings = append(fileResult.Findings, JSONFinding{
				Code:    diag.Code,
				Line:    diag.Line,
				Match:   diag.Match,
				Message: diag.Message,
			})
		}
		output.Files = append(output.Files, fileResult)
	}
	return output
}
