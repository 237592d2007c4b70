package configloader

import "github.com/yaklabco/gotplfmt/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Profile != "" {
		result.Profile = override.Profile
	}
	if override.IndentSize != 0 {
		result.IndentSize = override.IndentSize
	}
	if override.IndentChar != "" {
		result.IndentChar = override.IndentChar
	}
	if override.MaxLineLength != 0 {
		result.MaxLineLength = override.MaxLineLength
	}
	if override.MaxAttributeLength != 0 {
		result.MaxAttributeLength = override.MaxAttributeLength
	}
	if override.CSSFilePath != "" {
		result.CSSFilePath = override.CSSFilePath
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	// Booleans only merge in the "true" direction; a config file cannot
	// unset a flag enabled by a lower layer.
	if override.FormatAttributeTemplateTags {
		result.FormatAttributeTemplateTags = true
	}
	if override.NoSetFormatting {
		result.NoSetFormatting = true
	}
	if override.NoFunctionFormatting {
		result.NoFunctionFormatting = true
	}
	if override.PreserveBlankLines {
		result.PreserveBlankLines = true
	}
	if override.PreserveLeadingSpace {
		result.PreserveLeadingSpace = true
	}
	if override.Check {
		result.Check = true
	}

	// Slices: override replaces base entirely if non-nil.
	if override.IgnoredAttributes != nil {
		result.IgnoredAttributes = override.IgnoredAttributes
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.DisableRules != nil {
		result.DisableRules = override.DisableRules
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
