package configloader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
	"github.com/yaklabco/gotplfmt/pkg/lint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "indent_size").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rule codes).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownProfiles lists valid profile names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownProfiles = map[string]bool{
	"html":         true,
	"generic-html": true,
	"django":       true,
	"jinja":        true,
	"nunjucks":     true,
	"handlebars":   true,
	"golang":       true,
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText: true,
	config.FormatJSON: true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Profile != "" && !knownProfiles[strings.ToLower(cfg.Profile)] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "profile",
			Value:   cfg.Profile,
			Message: fmt.Sprintf("unknown profile %q; must be one of: html, django, jinja, nunjucks, handlebars, golang", cfg.Profile),
		})
	}

	if cfg.IndentSize < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "indent_size",
			Value:   cfg.IndentSize,
			Message: "indent_size must be >= 0",
		})
	}

	if cfg.IndentChar != "" && cfg.IndentChar != " " && cfg.IndentChar != "\t" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "indent_char",
			Value:   cfg.IndentChar,
			Message: "indent_char must be a space or a tab",
		})
	}

	if cfg.MaxLineLength < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "max_line_length",
			Value:   cfg.MaxLineLength,
			Message: "max_line_length must be >= 0",
		})
	}

	if cfg.MaxAttributeLength < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "max_attribute_length",
			Value:   cfg.MaxAttributeLength,
			Message: "max_attribute_length must be >= 0 (0 disables attribute reflow)",
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json", cfg.Format),
		})
	}

	validateExtensions(cfg, result)
	validateDisabledRules(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateExtensions checks that configured extensions start with a dot.
func validateExtensions(cfg *config.Config, result *ValidationResult) {
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("extension %q must start with a dot", ext),
			})
		}
	}
}

// validateDisabledRules warns about rule codes the registry does not know.
func validateDisabledRules(cfg *config.Config, result *ValidationResult) {
	registry := lint.DefaultRegistry

	for _, key := range cfg.DisableRules {
		if _, _, ok := registry.Resolve(key); !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "disable",
				Value:   key,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", key),
			})
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns.
		_, err := filepath.Match(pattern, "")
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidProfile returns true if the profile name is valid.
func IsValidProfile(name string) bool {
	return knownProfiles[strings.ToLower(name)]
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}
