package lint

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with
// interface methods.
type BaseRule struct {
	code string
	name string
	desc string
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(code, name, desc string) BaseRule {
	return BaseRule{code: code, name: name, desc: desc}
}

// Code returns the unique identifier for this rule.
func (r *BaseRule) Code() string {
	return r.code
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// Apply must be overridden by concrete rule implementations.
func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) {
	return nil, nil
}
