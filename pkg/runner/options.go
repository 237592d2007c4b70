// Package runner provides multi-file orchestration for formatting and
// linting.
package runner

import "github.com/yaklabco/gotplfmt/pkg/config"

// Mode selects what the runner does with each discovered file.
type Mode int

const (
	// ModeFormat rewrites files in place (or reports, with Check).
	ModeFormat Mode = iota
	// ModeLint collects findings without touching files.
	ModeLint
)

// Options controls multi-file behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to
	// process. If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// IncludeGlobs are additional glob patterns to include, relative to
	// WorkingDir. Empty means "include everything that matches the
	// configured extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Mode selects formatting or linting.
	Mode Mode

	// Check reports would-be changes without writing, in format mode.
	Check bool

	// Backup creates a sidecar copy of each file before rewriting it.
	Backup bool

	// Profile is the compiled configuration for this run.
	Profile *config.Profile
}

// effectiveExtensions returns the extensions to use, falling back to
// the configured defaults.
func (o Options) effectiveExtensions() []string {
	if o.Profile != nil && len(o.Profile.Cfg.Extensions) > 0 {
		return o.Profile.Cfg.Extensions
	}
	return config.NewConfig().Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if
// empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
