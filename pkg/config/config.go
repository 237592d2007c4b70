// Package config defines core configuration types for gotplfmt.
// These types are pure data structures; loading and merging live in
// internal/configloader, pattern compilation in profile.go.
package config

// OutputFormat specifies the output format for lint findings.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config is the root configuration structure for gotplfmt.
type Config struct {
	// Profile selects the template dialect pattern set
	// ("html", "django", "jinja", "handlebars", "golang", "nunjucks").
	Profile string `mapstructure:"profile" yaml:"profile" toml:"profile"`

	// IndentSize is the width of one indentation level.
	IndentSize int `mapstructure:"indent_size" yaml:"indent_size" toml:"indent_size"`

	// IndentChar is the character used for indentation (space or tab).
	IndentChar string `mapstructure:"indent_char" yaml:"indent_char" toml:"indent_char"`

	// MaxLineLength is the target maximum line length for reflowed
	// template expressions.
	MaxLineLength int `mapstructure:"max_line_length" yaml:"max_line_length" toml:"max_line_length"`

	// MaxAttributeLength is the attribute-string length at which a tag's
	// attributes are spread over multiple lines.
	MaxAttributeLength int `mapstructure:"max_attribute_length" yaml:"max_attribute_length" toml:"max_attribute_length"`

	// FormatAttributeTemplateTags enables re-indenting template
	// expressions found inside attribute values.
	FormatAttributeTemplateTags bool `mapstructure:"format_attribute_template_tags" yaml:"format_attribute_template_tags" toml:"format_attribute_template_tags"`

	// NoSetFormatting disables reformatting of set-assignment bodies.
	NoSetFormatting bool `mapstructure:"no_set_formatting" yaml:"no_set_formatting" toml:"no_set_formatting"`

	// NoFunctionFormatting disables reformatting of call-like expressions.
	NoFunctionFormatting bool `mapstructure:"no_function_formatting" yaml:"no_function_formatting" toml:"no_function_formatting"`

	// PreserveBlankLines keeps leading blank lines in the output.
	PreserveBlankLines bool `mapstructure:"preserve_blank_lines" yaml:"preserve_blank_lines" toml:"preserve_blank_lines"`

	// PreserveLeadingSpace leaves unclassified text lines unmodified
	// instead of reindenting them.
	PreserveLeadingSpace bool `mapstructure:"preserve_leading_space" yaml:"preserve_leading_space" toml:"preserve_leading_space"`

	// IgnoredAttributes lists attribute names excluded from template-tag
	// reflow inside attribute values.
	IgnoredAttributes []string `mapstructure:"ignored_attributes" yaml:"ignored_attributes" toml:"ignored_attributes"`

	// CSSFilePath is where generated CSS rules are appended.
	CSSFilePath string `mapstructure:"css_file_path" yaml:"css_file_path" toml:"css_file_path"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `mapstructure:"ignore" yaml:"ignore" toml:"ignore"`

	// Extensions lists file extensions considered during discovery.
	Extensions []string `mapstructure:"extensions" yaml:"extensions" toml:"extensions"`

	// CLI-level options (not persisted to config files).

	// Check reports whether files would change without writing them.
	Check bool `mapstructure:"-" yaml:"-" toml:"-"`

	// Jobs is the number of parallel workers (0 = GOMAXPROCS).
	Jobs int `mapstructure:"-" yaml:"-" toml:"-"`

	// Format specifies the output format for lint findings.
	Format OutputFormat `mapstructure:"-" yaml:"-" toml:"-"`

	// DisableRules contains lint rule codes to disable.
	DisableRules []string `mapstructure:"disable" yaml:"disable" toml:"disable"`
}

// NewConfig returns a Config with the tool's defaults.
func NewConfig() *Config {
	return &Config{
		Profile:            "html",
		IndentSize:         4,
		IndentChar:         " ",
		MaxLineLength:      120,
		MaxAttributeLength: 70,
		CSSFilePath:        "gotplfmt.css",
		Extensions:         []string{".html", ".htm", ".tpl", ".tmpl", ".jinja", ".j2", ".njk", ".hbs"},
		Format:             FormatText,
	}
}

// Indent returns the string for one indentation level.
func (c *Config) Indent() string {
	size := c.IndentSize
	if size <= 0 {
		size = 4
	}
	ch := c.IndentChar
	if ch == "" {
		ch = " "
	}
	out := ""
	for range size {
		out += ch
	}
	return out
}

// IgnoredAttribute reports whether name is excluded from attribute-value
// template reflow.
func (c *Config) IgnoredAttribute(name string) bool {
	for _, a := range c.IgnoredAttributes {
		if a == name {
			return true
		}
	}
	return false
}
