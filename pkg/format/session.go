package format

import (
	"sync"

	"github.com/yaklabco/gotplfmt/pkg/css"
)

// Session carries the cross-file state of one formatting run: the rule
// table that maps extracted inline styles to generated class names.
// One session is shared by all workers; its methods are safe for
// concurrent use.
type Session struct {
	mu    sync.Mutex
	table *css.RuleTable
}

// NewSession returns a session with an empty rule table.
func NewSession() *Session {
	return &Session{table: css.NewRuleTable()}
}

// ClassFor returns the class name for an inline style, minting one on
// first sight.
func (s *Session) ClassFor(style string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.ClassFor(style)
}

// Rules returns the accumulated class/style pairs in mint order.
func (s *Session) Rules() []css.Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Rules()
}
