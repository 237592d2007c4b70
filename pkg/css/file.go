package css

import "strings"

// Render returns stylesheet text for rules, one block per rule.
func Render(rules []Rule) string {
	var b strings.Builder
	for _, r := range rules {
		b.WriteString(".")
		b.WriteString(r.Class)
		b.WriteString(" { ")
		b.WriteString(strings.TrimSpace(r.Style))
		b.WriteString(" }\n")
	}
	return b.String()
}

// Dedupe drops repeated selector blocks from stylesheet text, keeping
// the first occurrence of each selector. The result is re-rendered in
// the generated-file format.
func Dedupe(src string) string {
	seen := make(map[string]bool)
	var kept []Rule
	for _, r := range ParseRules(src) {
		if seen[r.Class] {
			continue
		}
		seen[r.Class] = true
		kept = append(kept, r)
	}
	return Render(kept)
}
