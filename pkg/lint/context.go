package lint

import (
	"context"
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
	"github.com/yaklabco/gotplfmt/pkg/format"
)

// TagToken is one start or end tag found in the source.
type TagToken struct {
	// Name is the lowercased element name.
	Name string

	// Attrs is the raw attribute section, template syntax included.
	Attrs string

	// Text is the full tag as written.
	Text string

	// Line is the 1-based line the tag starts on.
	Line int

	// Closing marks an end tag; SelfClosing a trailing slash.
	Closing     bool
	SelfClosing bool
}

// RuleContext carries everything a rule needs for one file. One context
// is shared by all rules of a run over that file.
type RuleContext struct {
	Ctx      context.Context
	Profile  *config.Profile
	FilePath string
	Source   string

	tags     []TagToken
	tagsDone bool
}

// NewRuleContext creates a context for linting one file.
func NewRuleContext(ctx context.Context, p *config.Profile, path, source string) *RuleContext {
	return &RuleContext{Ctx: ctx, Profile: p, FilePath: path, Source: source}
}

// Cancelled reports whether the surrounding run was cancelled.
func (c *RuleContext) Cancelled() bool {
	select {
	case <-c.Ctx.Done():
		return true
	default:
		return false
	}
}

// Tags returns every tag outside raw regions, in document order. The
// scan runs once and is shared by all rules.
func (c *RuleContext) Tags() []TagToken {
	if !c.tagsDone {
		c.tags = scanTags(c.Profile, c.Source)
		c.tagsDone = true
	}
	return c.tags
}

func scanTags(p *config.Profile, src string) []TagToken {
	spans := format.RawSpans(p, src)
	var tags []TagToken
	line := 1
	prev := 0
	for _, loc := range p.TagMatch.FindAllStringSubmatchIndex(src, -1) {
		line += strings.Count(src[prev:loc[0]], "\n")
		prev = loc[0]
		if format.InSpans(spans, loc[0], loc[1]) {
			continue
		}
		tags = append(tags, TagToken{
			Name:        strings.ToLower(src[loc[4]:loc[5]]),
			Attrs:       src[loc[6]:loc[7]],
			Text:        src[loc[0]:loc[1]],
			Line:        line,
			Closing:     src[loc[2]:loc[3]] == "/",
			SelfClosing: src[loc[8]:loc[9]] == "/",
		})
	}
	return tags
}
