// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldProfile = "profile"
	FieldCheck   = "check"
	FieldJobs    = "jobs"
	FieldCSSFile = "css_file"

	// Statistics fields.
	FieldFilesDiscovered   = "files_discovered"
	FieldFilesProcessed    = "files_processed"
	FieldFilesChanged      = "files_changed"
	FieldFilesSkipped      = "files_skipped"
	FieldFilesWithFindings = "files_with_findings"
	FieldFindingsTotal     = "findings_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldCode        = "code"
	FieldName        = "name"
	FieldDescription = "description"
)
