// Package lint provides the rule engine, diagnostics, and registry for
// gotplfmt's template linting.
package lint

// Diagnostic represents a single lint finding in a file.
type Diagnostic struct {
	// Code is the identifier of the rule that produced this finding.
	Code string

	// RuleName is the human-readable name of the rule.
	RuleName string

	// Message is the human-readable description of the finding.
	Message string

	// FilePath is the path to the file containing the finding.
	FilePath string

	// Line is the 1-based line number of the finding.
	Line int

	// Match is a short excerpt of the offending source, at most 20
	// characters.
	Match string
}

// Rule defines the interface that all lint rules implement.
type Rule interface {
	// Code returns the unique identifier for this rule (e.g., "T025").
	Code() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// Apply executes the rule against the given context and returns
	// findings. Error is reserved for internal failures, not findings.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}

// matchExcerptLen caps Diagnostic.Match.
const matchExcerptLen = 20

// Excerpt truncates s to the diagnostic excerpt length.
func Excerpt(s string) string {
	if len(s) > matchExcerptLen {
		return s[:matchExcerptLen]
	}
	return s
}
