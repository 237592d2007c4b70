package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotplfmt/pkg/config"
	_ "github.com/yaklabco/gotplfmt/pkg/lint/rules" // Register built-in rules
)

// strictOptions ignores every ambient config source so tests only see
// what they set up themselves.
func strictOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

// projectDir creates a temp directory marked as a VCS root so the
// upward config search cannot escape it.
func projectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMergeScalars(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	override := &config.Config{Profile: "django", IndentSize: 2}

	got := merge(base, override)
	assert.Equal(t, "django", got.Profile)
	assert.Equal(t, 2, got.IndentSize)
	assert.Equal(t, 120, got.MaxLineLength) // untouched default
}

func TestMergeBooleansOnlyEnable(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.PreserveBlankLines = true

	got := merge(base, &config.Config{PreserveBlankLines: false, Check: true})
	assert.True(t, got.PreserveBlankLines, "a false override cannot unset a flag")
	assert.True(t, got.Check)
}

func TestMergeSlicesReplace(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"vendor/**"}

	got := merge(base, &config.Config{Ignore: []string{"dist/**"}})
	assert.Equal(t, []string{"dist/**"}, got.Ignore)

	got = merge(base, &config.Config{})
	assert.Equal(t, []string{"vendor/**"}, got.Ignore, "nil slice keeps the base value")
}

func TestMergeNil(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Same(t, cfg, merge(nil, cfg))
	assert.Same(t, cfg, merge(cfg, nil))
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	got := MergeAll(
		config.NewConfig(),
		&config.Config{Profile: "django"},
		&config.Config{Profile: "jinja", IndentSize: 2},
	)
	assert.Equal(t, "jinja", got.Profile)
	assert.Equal(t, 2, got.IndentSize)

	assert.Nil(t, MergeAll())
}

func TestLoadProjectYAML(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	path := writeConfigFile(t, dir, ".gotplfmt.yaml", "profile: django\nindent_size: 2\n")

	result, err := Load(context.Background(), strictOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, "django", result.Config.Profile)
	assert.Equal(t, 2, result.Config.IndentSize)
	assert.Equal(t, 120, result.Config.MaxLineLength)
	assert.Equal(t, []string{path}, result.LoadedFrom)
	assert.Equal(t, path, result.Paths.Project)
}

func TestLoadProjectTOML(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeConfigFile(t, dir, "gotplfmt.toml", "profile = \"jinja\"\nindent_size = 8\n")

	result, err := Load(context.Background(), strictOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, "jinja", result.Config.Profile)
	assert.Equal(t, 8, result.Config.IndentSize)
}

func TestLoadExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeConfigFile(t, dir, ".gotplfmt.yaml", "profile: django\nindent_size: 2\n")
	explicit := writeConfigFile(t, dir, "ci.yaml", "profile: golang\n")

	opts := strictOptions(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "golang", result.Config.Profile)
	assert.Equal(t, 2, result.Config.IndentSize, "explicit file only overrides what it sets")
}

func TestLoadEnv(t *testing.T) {
	dir := projectDir(t)
	t.Setenv("GOTPLFMT_PROFILE", "handlebars")
	t.Setenv("GOTPLFMT_INDENT_SIZE", "3")

	opts := strictOptions(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "handlebars", result.Config.Profile)
	assert.Equal(t, 3, result.Config.IndentSize)
}

func TestLoadEnvInvalidBool(t *testing.T) {
	dir := projectDir(t)
	t.Setenv("GOTPLFMT_NO_SET_FORMATTING", "maybe")

	opts := strictOptions(dir)
	opts.IgnoreEnv = false

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid boolean")
}

func TestLoadCLIBeatsEnv(t *testing.T) {
	dir := projectDir(t)
	t.Setenv("GOTPLFMT_PROFILE", "django")

	opts := strictOptions(dir)
	opts.IgnoreEnv = false
	opts.CLIConfig = &config.Config{Profile: "golang"}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "golang", result.Config.Profile)
}

func TestLoadUnknownProfileFails(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeConfigFile(t, dir, ".gotplfmt.yaml", "profile: mustache\n")

	_, err := Load(context.Background(), strictOptions(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown profile")
}

func TestLoadUnknownDisableRuleWarns(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeConfigFile(t, dir, ".gotplfmt.yaml", "disable:\n  - T025\n  - T999\n")

	result, err := Load(context.Background(), strictOptions(dir))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `unknown rule "T999"`)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	result := Validate(cfg)
	assert.True(t, result.Valid())
	assert.False(t, result.HasWarnings())

	cfg.IndentSize = -1
	cfg.IndentChar = "x"
	cfg.Extensions = []string{"html"}
	result = Validate(cfg)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, "indent_size", result.Errors[0].Field)
	assert.Equal(t, "indent_char", result.Errors[1].Field)
	assert.Equal(t, "extensions[0]", result.Errors[2].Field)
}

func TestValidateWithFile(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{IndentSize: -1}
	result := ValidateWithFile(cfg, "conf.yaml")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "conf.yaml: indent_size: indent_size must be >= 0", result.Errors[0].Error())
}

func TestFindProjectConfigSearchesUpward(t *testing.T) {
	t.Parallel()

	parent := projectDir(t)
	path := writeConfigFile(t, parent, ".gotplfmt.yaml", "profile: django\n")
	child := filepath.Join(parent, "templates", "mail")
	require.NoError(t, os.MkdirAll(child, 0o755))

	found, err := FindProjectConfig(context.Background(), child)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindProjectConfigStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	writeConfigFile(t, parent, ".gotplfmt.yaml", "profile: django\n")
	nested := filepath.Join(parent, "other")
	require.NoError(t, os.MkdirAll(filepath.Join(nested, ".git"), 0o755))

	found, err := FindProjectConfig(context.Background(), nested)
	require.NoError(t, err)
	assert.Empty(t, found, "sibling project config must not leak across a VCS root")
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	path := filepath.Join(dir, "out.yaml")

	cfg := config.NewConfig()
	cfg.Profile = "jinja"
	require.NoError(t, WriteConfig(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# gotplfmt configuration")

	opts := strictOptions(dir)
	opts.IgnoreProjectConfig = true
	opts.ExplicitPath = path

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "jinja", result.Config.Profile)
}

func TestParseSliceValue(t *testing.T) {
	t.Parallel()

	assert.Nil(t, parseSliceValue(""))
	assert.Equal(t, []string{"a", "b"}, parseSliceValue("a, b,"))
}

func TestGetEnvVarName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GOTPLFMT_PROFILE", GetEnvVarName("profile"))
	assert.Equal(t, "", GetEnvVarName("nope"))
}

func TestConfigFileKinds(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTOMLConfig("gotplfmt.toml"))
	assert.False(t, IsTOMLConfig(".gotplfmt.yaml"))
	assert.True(t, IsYAMLConfig(".gotplfmt.yml"))
	assert.False(t, IsYAMLConfig("gotplfmt.toml"))
}
