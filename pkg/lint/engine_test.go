package lint_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotplfmt/pkg/config"
	"github.com/yaklabco/gotplfmt/pkg/lint"
	_ "github.com/yaklabco/gotplfmt/pkg/lint/rules" // Register built-in rules
)

func compileProfile(t *testing.T, name string) *config.Profile {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Profile = name
	p, err := config.Compile(cfg)
	require.NoError(t, err)
	return p
}

// stubRule reports one fixed diagnostic per configured line.
type stubRule struct {
	lint.BaseRule
	lines []int
}

func newStubRule(code string, lines ...int) *stubRule {
	return &stubRule{
		BaseRule: lint.NewBaseRule(code, "stub-"+strings.ToLower(code), "stub rule"),
		lines:    lines,
	}
}

func (r *stubRule) Apply(_ *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	for _, line := range r.lines {
		diags = append(diags, lint.Diagnostic{Code: r.Code(), Message: "stub finding", Line: line})
	}
	return diags, nil
}

func TestLintSourceSortsAndFillsFields(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newStubRule("T902", 3, 1))
	registry.Register(newStubRule("T901", 3))

	engine := lint.NewEngine(registry)
	p := compileProfile(t, "html")

	diags, err := engine.LintSource(context.Background(), p, "page.html", []byte("a\nb\nc\n"))
	require.NoError(t, err)
	require.Len(t, diags, 3)

	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, "T902", diags[0].Code)
	assert.Equal(t, 3, diags[1].Line)
	assert.Equal(t, "T901", diags[1].Code)
	assert.Equal(t, 3, diags[2].Line)
	assert.Equal(t, "T902", diags[2].Code)

	for _, d := range diags {
		assert.Equal(t, "page.html", d.FilePath)
		assert.NotEmpty(t, d.RuleName)
	}
}

func TestLintSourceDisabledRules(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newStubRule("T901", 1))
	registry.Register(newStubRule("T902", 1))
	registry.RegisterAlias("H902", "T902")

	engine := lint.NewEngine(registry)

	tests := []struct {
		name    string
		disable []string
		want    []string
	}{
		{name: "by code", disable: []string{"T901"}, want: []string{"T902"}},
		{name: "by name", disable: []string{"stub-t902"}, want: []string{"T901"}},
		{name: "by alias", disable: []string{"H902"}, want: []string{"T901"}},
		{name: "unknown key ignored", disable: []string{"nope"}, want: []string{"T901", "T902"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.NewConfig()
			cfg.DisableRules = tt.disable
			p, err := config.Compile(cfg)
			require.NoError(t, err)

			diags, err := engine.LintSource(context.Background(), p, "a.html", []byte("x\n"))
			require.NoError(t, err)

			var codes []string
			for _, d := range diags {
				codes = append(codes, d.Code)
			}
			assert.Equal(t, tt.want, codes)
		})
	}
}

func TestLintSourceSuppression(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newStubRule("T901", 1, 2, 3))

	engine := lint.NewEngine(registry)
	p := compileProfile(t, "html")

	src := strings.Join([]string{
		"clean",
		"bad <!-- gotplfmt:ignore T901 -->",
		"bad again",
	}, "\n")

	diags, err := engine.LintSource(context.Background(), p, "a.html", []byte(src))
	require.NoError(t, err)
	require.Len(t, diags, 2)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, 3, diags[1].Line)
}

func TestLintSourceBuiltinRules(t *testing.T) {
	t.Parallel()

	engine := lint.NewEngine(lint.DefaultRegistry)
	p := compileProfile(t, "html")

	src := "<html>\n<img src=\"a.png\">\n"
	diags, err := engine.LintSource(context.Background(), p, "page.html", []byte(src))
	require.NoError(t, err)

	var got []string
	for _, d := range diags {
		got = append(got, d.Code)
	}
	// Line 1: missing lang and an unmatched html tag; line 2: img
	// without dimensions or alt text.
	assert.Equal(t, []string{"T005", "T025", "T006", "T013"}, got)
	assert.Equal(t, []int{1, 1, 2, 2}, []int{diags[0].Line, diags[1].Line, diags[2].Line, diags[3].Line})
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	rule := newStubRule("T900", 1)
	registry.Register(rule)
	registry.RegisterAlias("H900", "T900")

	for _, key := range []string{"T900", "stub-t900", "H900"} {
		code, resolved, ok := registry.Resolve(key)
		assert.True(t, ok, key)
		assert.Equal(t, "T900", code, key)
		assert.Same(t, lint.Rule(rule), resolved, key)
	}

	_, _, ok := registry.Resolve("T999")
	assert.False(t, ok)
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", lint.Excerpt("short"))
	long := strings.Repeat("x", 40)
	assert.Equal(t, strings.Repeat("x", 20), lint.Excerpt(long))
}
