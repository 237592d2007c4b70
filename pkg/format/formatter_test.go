package format_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotplfmt/pkg/config"
	"github.com/yaklabco/gotplfmt/pkg/format"
)

func formatHTML(t *testing.T, src string) string {
	t.Helper()
	return format.Format(compileProfile(t, "html"), nil, src)
}

func TestFormatNestedElements(t *testing.T) {
	t.Parallel()

	got := formatHTML(t, "<div><p>hello</p></div>")
	want := "<div>\n    <p>\n        hello\n    </p>\n</div>\n"
	assert.Equal(t, want, got)
}

func TestFormatKeepsInlineMarkup(t *testing.T) {
	t.Parallel()

	got := formatHTML(t, "<div>\n<i>italic</i> text\n</div>\n")
	want := "<div>\n    <i>italic</i> text\n</div>\n"
	assert.Equal(t, want, got)
}

func TestFormatCRLFRoundTrip(t *testing.T) {
	t.Parallel()

	got := formatHTML(t, "<div>\r\n<span>x</span>\r\n</div>\r\n")
	want := "<div>\r\n    <span>x</span>\r\n</div>\r\n"
	assert.Equal(t, want, got)
}

func TestFormatPreservesPreContent(t *testing.T) {
	t.Parallel()

	got := formatHTML(t, "<div>\n<pre>\n  keep   this\n</pre>\n</div>\n")
	want := "<div>\n    <pre>\n  keep   this\n    </pre>\n</div>\n"
	assert.Equal(t, want, got)
}

func TestFormatPreservesScriptContent(t *testing.T) {
	t.Parallel()

	got := formatHTML(t, "<div>\n<script>\n  var x = 1;\n</script>\n</div>\n")
	want := "<div>\n    <script>\n  var x = 1;\n    </script>\n</div>\n"
	assert.Equal(t, want, got)
}

func TestFormatDropsBlankLines(t *testing.T) {
	t.Parallel()

	got := formatHTML(t, "\n\n<div>\n\n<span>x</span>\n</div>\n")
	want := "<div>\n    <span>x</span>\n</div>\n"
	assert.Equal(t, want, got)
}

func TestFormatPreserveBlankLines(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.PreserveBlankLines = true
	p, err := config.Compile(cfg)
	require.NoError(t, err)

	got := format.Format(p, nil, "\n\n<div>\n\n<span>x</span>\n</div>\n")
	want := "\n\n<div>\n\n    <span>x</span>\n</div>\n"
	assert.Equal(t, want, got)
}

func TestFormatPreserveLeadingSpace(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.PreserveLeadingSpace = true
	p, err := config.Compile(cfg)
	require.NoError(t, err)

	got := format.Format(p, nil, "  some text\n<div>\nbody\n</div>\n")
	want := "  some text\n<div>\nbody\n</div>\n"
	assert.Equal(t, want, got)
}

func TestFormatOffOnDirectives(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"<div>",
		"<!-- gotplfmt:off -->",
		"<p>   messy   </p>",
		"<!-- gotplfmt:on -->",
		"<span>x</span>",
		"</div>",
		"",
	}, "\n")

	want := strings.Join([]string{
		"<div>",
		"    <!-- gotplfmt:off -->",
		"<p>   messy   </p>",
		"    <!-- gotplfmt:on -->",
		"    <span>x</span>",
		"</div>",
		"",
	}, "\n")

	assert.Equal(t, want, formatHTML(t, src))
}

func TestFormatDjangoConditional(t *testing.T) {
	t.Parallel()

	p := compileProfile(t, "django")
	got := format.Format(p, nil, "{% if user %}<p>hi</p>{% else %}<p>bye</p>{% endif %}")
	want := strings.Join([]string{
		"{% if user %}",
		"    <p>",
		"        hi",
		"    </p>",
		"{% else %}",
		"    <p>",
		"        bye",
		"    </p>",
		"{% endif %}",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatNormalizesTagSpacing(t *testing.T) {
	t.Parallel()

	p := compileProfile(t, "django")
	got := format.Format(p, nil, "{%if x%}<span>y</span>{%endif%}\n")
	assert.Equal(t, "{% if x %}<span>y</span>{% endif %}\n", got)
}

func TestFormatReflowsLongAttributes(t *testing.T) {
	t.Parallel()

	src := `<input type="text" name="username" class="form-control input-lg" placeholder="Enter your username here" required>` + "\n"
	want := strings.Join([]string{
		`<input type="text"`,
		`       name="username"`,
		`       class="form-control input-lg"`,
		`       placeholder="Enter your username here"`,
		`       required>`,
		"",
	}, "\n")
	assert.Equal(t, want, formatHTML(t, src))
}

func TestFormatSetTagCompactsJSON(t *testing.T) {
	t.Parallel()

	p := compileProfile(t, "jinja")
	got := format.Format(p, nil, `{% set config = {"b": 2, "a": 1} %}`+"\n")
	assert.Equal(t, `{% set config = {"a": 1, "b": 2} %}`+"\n", got)
}

func TestFormatSetTagExpandsPastLineLimit(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Profile = "jinja"
	cfg.MaxLineLength = 20
	p, err := config.Compile(cfg)
	require.NoError(t, err)

	got := format.Format(p, nil, "{% set x = [1, 2] %}\n")
	want := "{% set x = [\n    1,\n    2\n] %}\n"
	assert.Equal(t, want, got)
}

func TestFormatSetTagCollapsesMultiline(t *testing.T) {
	t.Parallel()

	p := compileProfile(t, "jinja")
	got := format.Format(p, nil, "{% set x = [1,\n2] %}\n")
	assert.Equal(t, "{% set x = [1, 2] %}\n", got)
}

func TestFormatSetTagDisabled(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Profile = "jinja"
	cfg.NoSetFormatting = true
	p, err := config.Compile(cfg)
	require.NoError(t, err)

	src := `{% set x = {"b": 1, "a": 2} %}` + "\n"
	assert.Equal(t, src, format.Format(p, nil, src))
}

func TestFormatFunctionCall(t *testing.T) {
	t.Parallel()

	p := compileProfile(t, "jinja")
	got := format.Format(p, nil, `{{url_for("home",2)}}`+"\n")
	assert.Equal(t, `{{ url_for("home", 2) }}`+"\n", got)
}

func TestFormatIdempotent(t *testing.T) {
	t.Parallel()

	docs := map[string]string{
		"nested": "<div><p>hello</p></div>",
		"attrs":  `<input type="text" name="username" class="form-control input-lg" placeholder="Enter your username here" required>`,
		"raw":    "<div>\n<pre>\n  keep   this\n</pre>\n</div>\n",
		"inline": "<div>\n<i>italic</i> text\n</div>\n",
	}

	for name, src := range docs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			once := formatHTML(t, src)
			twice := formatHTML(t, once)
			assert.Equal(t, once, twice)
		})
	}
}

func TestFormatIdempotentDjango(t *testing.T) {
	t.Parallel()

	p := compileProfile(t, "django")
	src := "{% if user %}<p>hi</p>{% else %}<p>bye</p>{% endif %}"
	once := format.Format(p, nil, src)
	twice := format.Format(p, nil, once)
	assert.Equal(t, once, twice)
}

func TestFormatExtractsInlineStyles(t *testing.T) {
	t.Parallel()

	p := compileProfile(t, "html")
	sess := format.NewSession()

	src := `<div style="color: red"><span style="color: red">x</span></div>` + "\n"
	got := format.Format(p, sess, src)

	rules := sess.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, "color: red", rules[0].Style)
	assert.Regexp(t, regexp.MustCompile(`^class-[0-9a-f]{10}-1$`), rules[0].Class)

	assert.NotContains(t, got, "style=")
	assert.Equal(t, 2, strings.Count(got, `class="`+rules[0].Class+`"`))
}

func TestFormatMintedClassFollowsTagName(t *testing.T) {
	t.Parallel()

	p := compileProfile(t, "html")
	sess := format.NewSession()

	got := format.Format(p, sess, `<div id="x" style="color: red;">y</div>`+"\n")

	rules := sess.Rules()
	require.Len(t, rules, 1)
	assert.Contains(t, got, `<div class="`+rules[0].Class+`" id="x">`)
}

func TestFormatMergesExtractedClass(t *testing.T) {
	t.Parallel()

	p := compileProfile(t, "html")
	sess := format.NewSession()

	got := format.Format(p, sess, `<p style="margin: 0" class="lead big">x</p>`+"\n")

	rules := sess.Rules()
	require.Len(t, rules, 1)

	m := regexp.MustCompile(`class="([^"]*)"`).FindStringSubmatch(got)
	require.NotNil(t, m)
	names := strings.Fields(m[1])
	assert.Equal(t, []string{"big", rules[0].Class, "lead"}, names)
	assert.NotContains(t, got, "style=")
}

func TestFormatLeavesTemplatedStyles(t *testing.T) {
	t.Parallel()

	p := compileProfile(t, "django")
	sess := format.NewSession()

	got := format.Format(p, sess, `<span style="color: {{ color }}">x</span>`+"\n")

	assert.Contains(t, got, `style="color: {{ color }}"`)
	assert.Empty(t, sess.Rules())
}
