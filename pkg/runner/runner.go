package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gotplfmt/pkg/format"
	"github.com/yaklabco/gotplfmt/pkg/fsutil"
	"github.com/yaklabco/gotplfmt/pkg/lint"
)

// Runner orchestrates multi-file formatting and linting.
type Runner struct {
	// Session carries cross-file formatting state (the style rule
	// table). Shared by all workers.
	Session *format.Session

	// Engine runs lint rules in lint mode.
	Engine *lint.Engine
}

// New creates a Runner with the given session and lint engine.
func New(session *format.Session, engine *lint.Engine) *Runner {
	return &Runner{Session: session, Engine: engine}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; rebuild deterministic order below.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	if skipByLanguage(path, content) {
		outcome.Skipped = true
		return outcome
	}

	switch opts.Mode {
	case ModeLint:
		diags, err := r.Engine.LintSource(ctx, opts.Profile, path, content)
		if err != nil {
			outcome.Error = err
			return outcome
		}
		outcome.Diagnostics = diags

	default:
		formatted := format.Format(opts.Profile, r.Session, string(content))
		outcome.Changed = formatted != string(content)
		if !outcome.Changed || opts.Check {
			return outcome
		}
		// Refuse to clobber files modified behind our back.
		modified, err := fsutil.CheckModifiedQuick(ctx, info)
		if err != nil {
			outcome.Error = err
			return outcome
		}
		if modified {
			outcome.Error = fmt.Errorf("%s: file changed during formatting", path)
			return outcome
		}
		if opts.Backup {
			backup := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
			if _, err := fsutil.CreateBackup(ctx, path, backup); err != nil {
				outcome.Error = err
				return outcome
			}
		}
		if err := fsutil.WriteAtomic(ctx, path, []byte(formatted), info.Mode); err != nil {
			outcome.Error = err
			return outcome
		}
		outcome.Written = true
	}
	return outcome
}
