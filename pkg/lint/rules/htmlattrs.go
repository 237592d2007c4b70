package rules

import (
	"regexp"

	"github.com/yaklabco/gotplfmt/pkg/lint"
)

// Attribute presence rules. These check the raw attribute section of a
// tag, so template syntax inside values does not confuse them.

var (
	langAttr   = regexp.MustCompile(`(?i)(?:^|[ \t])lang[ \t]*=`)
	altAttr    = regexp.MustCompile(`(?i)(?:^|[ \t])alt[ \t]*=`)
	widthAttr  = regexp.MustCompile(`(?i)(?:^|[ \t])width[ \t]*=`)
	heightAttr = regexp.MustCompile(`(?i)(?:^|[ \t])height[ \t]*=`)
)

// HTMLLangRule reports html tags without a lang attribute.
type HTMLLangRule struct {
	lint.BaseRule
}

// NewHTMLLangRule creates a new html-lang rule.
func NewHTMLLangRule() *HTMLLangRule {
	return &HTMLLangRule{
		BaseRule: lint.NewBaseRule(
			"T005",
			"html-lang",
			"The html tag should specify the document language",
		),
	}
}

// Apply checks every opening html tag for a lang attribute.
func (r *HTMLLangRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	for _, tag := range ctx.Tags() {
		if tag.Name != "html" || tag.Closing {
			continue
		}
		if !langAttr.MatchString(tag.Attrs) {
			diags = append(diags, lint.Diagnostic{
				Code:    r.Code(),
				Message: "Html tag should have a lang attribute.",
				Line:    tag.Line,
				Match:   lint.Excerpt(tag.Text),
			})
		}
	}
	return diags, nil
}

// ImgDimensionsRule reports img tags without explicit dimensions.
type ImgDimensionsRule struct {
	lint.BaseRule
}

// NewImgDimensionsRule creates a new img-dimensions rule.
func NewImgDimensionsRule() *ImgDimensionsRule {
	return &ImgDimensionsRule{
		BaseRule: lint.NewBaseRule(
			"T006",
			"img-dimensions",
			"Img tags should carry height and width attributes",
		),
	}
}

// Apply checks every img tag for width and height attributes.
func (r *ImgDimensionsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	for _, tag := range ctx.Tags() {
		if tag.Name != "img" || tag.Closing {
			continue
		}
		if !widthAttr.MatchString(tag.Attrs) || !heightAttr.MatchString(tag.Attrs) {
			diags = append(diags, lint.Diagnostic{
				Code:    r.Code(),
				Message: "Img tag should have height and width attributes.",
				Line:    tag.Line,
				Match:   lint.Excerpt(tag.Text),
			})
		}
	}
	return diags, nil
}

// ImgAltRule reports img tags without alternative text.
type ImgAltRule struct {
	lint.BaseRule
}

// NewImgAltRule creates a new img-alt rule.
func NewImgAltRule() *ImgAltRule {
	return &ImgAltRule{
		BaseRule: lint.NewBaseRule(
			"T013",
			"img-alt",
			"Img tags should carry an alt attribute",
		),
	}
}

// Apply checks every img tag for an alt attribute.
func (r *ImgAltRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	for _, tag := range ctx.Tags() {
		if tag.Name != "img" || tag.Closing {
			continue
		}
		if !altAttr.MatchString(tag.Attrs) {
			diags = append(diags, lint.Diagnostic{
				Code:    r.Code(),
				Message: "Img tag should have an alt attribute.",
				Line:    tag.Line,
				Match:   lint.Excerpt(tag.Text),
			})
		}
	}
	return diags, nil
}
