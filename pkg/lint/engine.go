package lint

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/gotplfmt/pkg/config"
)

// Engine coordinates rule execution for linting.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates an Engine using the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// LintSource runs every enabled rule over one document and returns the
// findings in (line, code) order, with inline suppressions applied.
func (e *Engine) LintSource(
	ctx context.Context,
	p *config.Profile,
	path string,
	content []byte,
) ([]Diagnostic, error) {
	source := string(content)
	ruleCtx := NewRuleContext(ctx, p, path, source)
	sup := newSuppressor(source)
	disabled := e.disabledCodes(p.Cfg)

	var out []Diagnostic
	for _, rule := range e.Registry.Rules() {
		select {
		case <-ctx.Done():
			return out, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}
		if !rule.DefaultEnabled() || disabled[rule.Code()] {
			continue
		}

		diags, err := rule.Apply(ruleCtx)
		if err != nil {
			return out, fmt.Errorf("rule %s: %w", rule.Code(), err)
		}
		for _, d := range diags {
			if d.FilePath == "" {
				d.FilePath = path
			}
			if d.RuleName == "" {
				d.RuleName = rule.Name()
			}
			if sup.suppressed(d.Code, d.Line) {
				continue
			}
			out = append(out, d)
		}
	}

	slices.SortFunc(out, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
	return out, nil
}

// disabledCodes resolves the configured disable list against the
// registry, so names and legacy aliases work like codes do.
func (e *Engine) disabledCodes(cfg *config.Config) map[string]bool {
	disabled := make(map[string]bool, len(cfg.DisableRules))
	for _, key := range cfg.DisableRules {
		if code, _, ok := e.Registry.Resolve(key); ok {
			disabled[code] = true
		}
	}
	return disabled
}
