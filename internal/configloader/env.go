package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
)

// envVarPrefix is the prefix for all gotplfmt environment variables.
const envVarPrefix = "GOTPLFMT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"PROFILE":                {field: "profile", typ: envTypeString},
	"INDENT_SIZE":            {field: "indent_size", typ: envTypeInt},
	"INDENT_CHAR":            {field: "indent_char", typ: envTypeString},
	"MAX_LINE_LENGTH":        {field: "max_line_length", typ: envTypeInt},
	"MAX_ATTRIBUTE_LENGTH":   {field: "max_attribute_length", typ: envTypeInt},
	"FORMAT_ATTRIBUTE_TAGS":  {field: "format_attribute_template_tags", typ: envTypeBool},
	"NO_SET_FORMATTING":      {field: "no_set_formatting", typ: envTypeBool},
	"NO_FUNCTION_FORMATTING": {field: "no_function_formatting", typ: envTypeBool},
	"PRESERVE_BLANK_LINES":   {field: "preserve_blank_lines", typ: envTypeBool},
	"PRESERVE_LEADING_SPACE": {field: "preserve_leading_space", typ: envTypeBool},
	"CSS_FILE":               {field: "css_file_path", typ: envTypeString},
	"IGNORE":                 {field: "ignore", typ: envTypeSlice},
	"EXTENSIONS":             {field: "extensions", typ: envTypeSlice},
	"DISABLE":                {field: "disable", typ: envTypeSlice},
	"JOBS":                   {field: "jobs", typ: envTypeInt},
	"FORMAT":                 {field: "format", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOTPLFMT_ (e.g., GOTPLFMT_PROFILE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "profile":
		cfg.Profile = value
	case "indent_char":
		cfg.IndentChar = value
	case "css_file_path":
		cfg.CSSFilePath = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "format_attribute_template_tags":
		cfg.FormatAttributeTemplateTags = value
	case "no_set_formatting":
		cfg.NoSetFormatting = value
	case "no_function_formatting":
		cfg.NoFunctionFormatting = value
	case "preserve_blank_lines":
		cfg.PreserveBlankLines = value
	case "preserve_leading_space":
		cfg.PreserveLeadingSpace = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "indent_size":
		cfg.IndentSize = value
	case "max_line_length":
		cfg.MaxLineLength = value
	case "max_attribute_length":
		cfg.MaxAttributeLength = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "extensions":
		cfg.Extensions = value
	case "disable":
		cfg.DisableRules = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOTPLFMT_PROFILE":                "Template dialect: html, django, jinja, nunjucks, handlebars, or golang",
		"GOTPLFMT_INDENT_SIZE":            "Width of one indentation level",
		"GOTPLFMT_INDENT_CHAR":            "Indentation character (space or tab)",
		"GOTPLFMT_MAX_LINE_LENGTH":        "Target maximum line length for reflowed expressions",
		"GOTPLFMT_MAX_ATTRIBUTE_LENGTH":   "Attribute length at which tags break onto multiple lines",
		"GOTPLFMT_FORMAT_ATTRIBUTE_TAGS":  "Re-indent template tags inside attribute values: true or false",
		"GOTPLFMT_NO_SET_FORMATTING":      "Disable set-assignment reformatting: true or false",
		"GOTPLFMT_NO_FUNCTION_FORMATTING": "Disable call-expression reformatting: true or false",
		"GOTPLFMT_PRESERVE_BLANK_LINES":   "Keep blank lines in output: true or false",
		"GOTPLFMT_PRESERVE_LEADING_SPACE": "Leave text-line indentation unmodified: true or false",
		"GOTPLFMT_CSS_FILE":               "Path for generated CSS rules",
		"GOTPLFMT_IGNORE":                 "Comma-separated list of ignore patterns",
		"GOTPLFMT_EXTENSIONS":             "Comma-separated list of file extensions to process",
		"GOTPLFMT_DISABLE":                "Comma-separated list of lint rule codes to disable",
		"GOTPLFMT_JOBS":                   "Number of parallel workers (0 = auto)",
		"GOTPLFMT_FORMAT":                 "Output format: text or json",
	}
}
