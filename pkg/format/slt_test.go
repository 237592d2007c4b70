package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gotplfmt/pkg/format"
)

func TestIsSingleLineTagHTML(t *testing.T) {
	t.Parallel()
	p := compileProfile(t, "html")

	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "element pair", line: "<span>x</span>", want: true},
		{name: "pair with text around", line: "before <span>x</span> after", want: true},
		{name: "two pairs", line: "<span>a</span> and <em>b</em>", want: true},
		{name: "nested pair", line: "<b><i>x</i></b>", want: true},
		{name: "void element", line: "<br>", want: true},
		{name: "self closing", line: `<input type="text" />`, want: true},
		{name: "comment", line: "<!-- note -->", want: true},
		{name: "open only", line: "<div>", want: false},
		{name: "unclosed pair", line: "<span>dangling", want: false},
		{name: "close only", line: "</span>", want: false},
		{name: "plain text", line: "just text", want: false},
		{name: "empty", line: "", want: false},
		{name: "unknown element", line: "<widget>x</widget>", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, format.IsSingleLineTag(p, tt.line))
		})
	}
}

func TestIsSingleLineTagTemplates(t *testing.T) {
	t.Parallel()
	p := compileProfile(t, "django")

	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "balanced if", line: "{% if a %}x{% endif %}", want: true},
		{name: "balanced with", line: "{% with total=1 %}{{ total }}{% endwith %}", want: true},
		{name: "unbalanced if", line: "{% if a %}x", want: false},
		{name: "mixed pair and element", line: "{% if a %}<span>x</span>{% endif %}", want: true},
		{name: "template comment", line: "{# done #}", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, format.IsSingleLineTag(p, tt.line))
		})
	}
}

func TestStartsWithInlinePair(t *testing.T) {
	t.Parallel()
	p := compileProfile(t, "html")

	assert.True(t, format.StartsWithInlinePair(p, `<li><a href="#">x</a></li> rest`))
	assert.True(t, format.StartsWithInlinePair(p, "<span>x</span></div>"))
	assert.False(t, format.StartsWithInlinePair(p, "</div> text"))
	assert.False(t, format.StartsWithInlinePair(p, "text <span>x</span>"))
	assert.False(t, format.StartsWithInlinePair(p, "<br> text"))
}
