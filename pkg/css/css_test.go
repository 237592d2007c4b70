package css_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotplfmt/pkg/css"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
	}{
		{name: "case", a: "COLOR: RED", b: "color: red"},
		{name: "spacing", a: "color:red", b: "color: red"},
		{name: "declaration order", a: "margin: 0; color: red", b: "color: red; margin: 0"},
		{name: "trailing semicolon", a: "color: red;", b: "color: red"},
		{name: "comments dropped", a: "color: red /* warm */", b: "color: red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, css.Normalize(tt.b), css.Normalize(tt.a))
		})
	}
}

func TestNormalizeOutput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "color: red; margin: 0", css.Normalize("MARGIN:0;  color: RED;"))
	assert.Equal(t, "color: #fff", css.Normalize("color: #FFF"))
}

func TestNormalizeDistinguishesStyles(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, css.Normalize("color: red"), css.Normalize("color: blue"))
}

func TestRuleTableClassFor(t *testing.T) {
	t.Parallel()

	table := css.NewRuleTable()

	first := table.ClassFor("color: red")
	again := table.ClassFor("color: red")
	equivalent := table.ClassFor("COLOR:RED;")
	other := table.ClassFor("color: blue")

	assert.Equal(t, first, again)
	assert.Equal(t, first, equivalent)
	assert.NotEqual(t, first, other)

	assert.Regexp(t, regexp.MustCompile(`^class-[0-9a-f]{10}-1$`), first)
	assert.Regexp(t, regexp.MustCompile(`^class-[0-9a-f]{10}-2$`), other)

	rules := table.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "color: red", rules[0].Style)
	assert.Equal(t, "color: blue", rules[1].Style)
}

func TestRuleTableRulesIsCopy(t *testing.T) {
	t.Parallel()

	table := css.NewRuleTable()
	table.ClassFor("color: red")

	rules := table.Rules()
	rules[0].Style = "mutated"

	assert.Equal(t, "color: red", table.Rules()[0].Style)
}

func TestRender(t *testing.T) {
	t.Parallel()

	got := css.Render([]css.Rule{
		{Class: "a", Style: "color: red"},
		{Class: "b", Style: " margin: 0 "},
	})
	assert.Equal(t, ".a { color: red }\n.b { margin: 0 }\n", got)
}

func TestParseRules(t *testing.T) {
	t.Parallel()

	rules := css.ParseRules(".a { color: red }\n.b-2 { margin: 0 }\n")
	require.Len(t, rules, 2)
	assert.Equal(t, css.Rule{Class: "a", Style: "color: red"}, rules[0])
	assert.Equal(t, css.Rule{Class: "b-2", Style: "margin: 0"}, rules[1])
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	src := ".a { color: red }\n.b { margin: 0 }\n.a { color: blue }\n"
	got := css.Dedupe(src)
	assert.Equal(t, ".a { color: red }\n.b { margin: 0 }\n", got)
}

func TestDedupeEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", css.Dedupe(""))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := []css.Rule{
		{Class: "old-1", Style: "color: red"},
		{Class: "old-2", Style: "margin: 0"},
		{Class: "old-3", Style: "padding: 1px"},
	}
	b := []css.Rule{
		{Class: "new-1", Style: "COLOR: RED;"},
		{Class: "new-2", Style: "margin:0"},
	}

	got := css.Compare(a, b)
	assert.Equal(t, map[string]string{
		"old-1": "new-1",
		"old-2": "new-2",
	}, got)
}

func TestCompareFirstMatchWins(t *testing.T) {
	t.Parallel()

	a := []css.Rule{{Class: "x", Style: "color: red"}}
	b := []css.Rule{
		{Class: "first", Style: "color: red"},
		{Class: "second", Style: "color:red"},
	}

	assert.Equal(t, map[string]string{"x": "first"}, css.Compare(a, b))
}
