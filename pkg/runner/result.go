package runner

import "github.com/yaklabco/gotplfmt/pkg/lint"

// FileOutcome is the per-file result of a run.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Changed reports that formatting produced different content.
	Changed bool

	// Written reports that the file was rewritten on disk.
	Written bool

	// Skipped reports that language gating excluded the file.
	Skipped bool

	// Diagnostics holds lint findings, in lint mode.
	Diagnostics []lint.Diagnostic

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files excluded by language gating.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesChanged is the number of files whose formatting differed.
	FilesChanged int

	// FilesWritten is the number of files rewritten on disk.
	FilesWritten int

	// FilesWithFindings is the number of files with at least one finding.
	FilesWithFindings int

	// FindingsTotal is the total number of findings across all files.
	FindingsTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by
	// path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasChanges reports whether any file's formatting differed.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// HasFindings reports whether any lint findings were produced.
func (r *Result) HasFindings() bool {
	return r != nil && r.Stats.FindingsTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
	if n := len(outcome.Diagnostics); n > 0 {
		r.Stats.FilesWithFindings++
		r.Stats.FindingsTotal += n
	}
}
