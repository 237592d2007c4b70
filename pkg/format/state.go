// Package format implements the template-aware HTML formatter: a
// line-oriented indentation engine with attribute reflow, inline-style
// extraction, and template-expression reformatting. There is no HTML
// AST; lines are classified by an ordered cascade of predicates and the
// engine threads a small mutable state through the document.
package format

// State is the indentation state threaded across one document pass.
// It is created at document start and discarded at document end.
type State struct {
	// IndentLevel is the current nesting depth. Never negative.
	IndentLevel int

	// RawDepth counts nested ignored-block entries. Never negative.
	RawDepth int

	// Raw is true while inside an ignored (raw) block.
	Raw bool

	// RawFirstLine marks the opening line of a raw block, which is
	// still indented normally.
	RawFirstLine bool

	// InScriptStyle is true inside a <script> or <style> block.
	InScriptStyle bool

	// InSetTag is true inside a multi-line set assignment pseudo-scope.
	InSetTag bool
}

// NewState returns the initial state for a document.
func NewState() *State {
	return &State{}
}

// EnterRaw records entry into an ignored block.
func (s *State) EnterRaw() {
	s.Raw = true
	s.RawDepth++
}

// LeaveRaw decrements the ignored-block nesting count, clamped at zero,
// and clears raw mode once the count returns to zero.
func (s *State) LeaveRaw() {
	s.RawDepth--
	if s.RawDepth < 0 {
		s.RawDepth = 0
	}
	if s.RawDepth == 0 {
		s.Raw = false
	}
}

// Dedent lowers the indentation level, clamped at zero.
func (s *State) Dedent() {
	s.IndentLevel--
	if s.IndentLevel < 0 {
		s.IndentLevel = 0
	}
}
