// Package css holds the stylesheet side of inline-style extraction:
// the rule table that mints class names, the generated-file renderer,
// and comparison of rule sets across files.
package css

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Rule pairs a class selector with its declaration list.
type Rule struct {
	Class string
	Style string
}

// RuleTable assigns class names to extracted inline styles. Styles that
// normalize to the same declaration list share one class, so repeated
// inline styles collapse across a whole run.
type RuleTable struct {
	byFingerprint map[string]string
	rules         []Rule
	minted        int
}

// NewRuleTable returns an empty table.
func NewRuleTable() *RuleTable {
	return &RuleTable{byFingerprint: make(map[string]string)}
}

// ClassFor returns the class for style, minting a new one on first
// sight. Minted names embed a content hash plus a run-local counter, so
// names are stable for identical styles and never collide within a run.
func (t *RuleTable) ClassFor(style string) string {
	fp := Normalize(style)
	if cls, ok := t.byFingerprint[fp]; ok {
		return cls
	}
	t.minted++
	cls := fmt.Sprintf("class-%010x-%d", xxhash.Sum64String(fp)>>24, t.minted)
	t.byFingerprint[fp] = cls
	t.rules = append(t.rules, Rule{Class: cls, Style: style})
	return cls
}

// Rules returns the minted rules in mint order.
func (t *RuleTable) Rules() []Rule {
	return slices.Clone(t.rules)
}
