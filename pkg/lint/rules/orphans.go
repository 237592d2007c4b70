// Package rules contains the built-in lint rules.
package rules

import (
	"fmt"

	"github.com/yaklabco/gotplfmt/pkg/lint"
)

// OrphanTagRule reports start and end tags with no counterpart in the
// document. Matching is lenient: a close tag pairs with the most
// recent open of the same name anywhere in the open list, not just the
// top, so interleaved inline markup like <b><i></b></i> produces no
// findings.
type OrphanTagRule struct {
	lint.BaseRule
}

// NewOrphanTagRule creates a new orphan-tag rule.
func NewOrphanTagRule() *OrphanTagRule {
	return &OrphanTagRule{
		BaseRule: lint.NewBaseRule(
			"T025",
			"orphan-tag",
			"Start and end tags must pair up within the document",
		),
	}
}

// Apply scans tags in document order, keeping a list of open tags. A
// close tag pops its most recent same-name open; a close with no open
// is an orphan, as is every open left over at the end. Void and
// self-closing tags never need a partner.
func (r *OrphanTagRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	report := func(tag lint.TagToken) {
		diags = append(diags, lint.Diagnostic{
			Code:    r.Code(),
			Message: "Tag seems to be an orphan.",
			Line:    tag.Line,
			Match:   lint.Excerpt(tag.Text),
		})
	}

	var open []lint.TagToken
	for _, tag := range ctx.Tags() {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if tag.SelfClosing || ctx.Profile.IsVoidTag(tag.Name) {
			continue
		}
		if !tag.Closing {
			open = append(open, tag)
			continue
		}
		matched := false
		for i := len(open) - 1; i >= 0; i-- {
			if open[i].Name == tag.Name {
				open = append(open[:i], open[i+1:]...)
				matched = true
				break
			}
		}
		if !matched {
			report(tag)
		}
	}
	for _, tag := range open {
		report(tag)
	}
	return diags, nil
}
