package format

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
)

// Pre-passes that run before the indent loop. compressTags undoes the
// previous run's attribute reflow so a second pass reproduces it
// byte-for-byte; expandTags puts block-level constructs on their own
// lines so the line classifier sees one construct per line.

// compressTags joins tags whose attribute section was broken across
// lines, collapsing internal whitespace runs to single spaces. Tags
// inside raw regions are left alone.
func compressTags(p *config.Profile, src string) string {
	spans := RawSpans(p, src)
	return rewriteMatches(src, p.TagMatch.FindAllStringSubmatchIndex(src, -1), spans, func(loc []int) (string, bool) {
		whole := src[loc[0]:loc[1]]
		if !strings.Contains(whole, "\n") {
			return "", false
		}
		slash := src[loc[2]:loc[3]]
		name := src[loc[4]:loc[5]]
		attrs := strings.Join(strings.Fields(src[loc[6]:loc[7]]), " ")
		selfClose := ""
		if src[loc[8]:loc[9]] == "/" {
			selfClose = " /"
		}
		if attrs != "" {
			attrs = " " + attrs
		}
		return "<" + slash + name + attrs + selfClose + ">", true
	})
}

var (
	blockTagSpacing = regexp.MustCompile(`\{%([-+]?)[ \t]*([^\r\n{}]+?)[ \t]*([-+]?)%\}`)
	varTagSpacing   = regexp.MustCompile(`\{\{([-+]?)[ \t]*([^\r\n{}]+?)[ \t]*([-+]?)\}\}`)
	hbsOpenSpacing  = regexp.MustCompile(`\{\{[ \t]*([#/^])[ \t]*`)
)

// normalizeTagSpacing canonicalizes the padding inside template
// delimiters: {%tag%} becomes {% tag %}. The handlebars and Go
// dialects keep their unpadded house style; handlebars only has the
// space after its block sigil removed.
func normalizeTagSpacing(p *config.Profile, src string) string {
	switch p.Name {
	case "html", "golang":
		return src
	case "handlebars":
		spans := RawSpans(p, src)
		return rewriteMatches(src, hbsOpenSpacing.FindAllStringSubmatchIndex(src, -1), spans, func(loc []int) (string, bool) {
			return "{{" + src[loc[2]:loc[3]], true
		})
	}
	spans := RawSpans(p, src)
	src = rewriteMatches(src, blockTagSpacing.FindAllStringSubmatchIndex(src, -1), spans, func(loc []int) (string, bool) {
		return "{%" + src[loc[2]:loc[3]] + " " + src[loc[4]:loc[5]] + " " + src[loc[6]:loc[7]] + "%}", true
	})
	spans = RawSpans(p, src)
	return rewriteMatches(src, varTagSpacing.FindAllStringSubmatchIndex(src, -1), spans, func(loc []int) (string, bool) {
		return "{{" + src[loc[2]:loc[3]] + " " + src[loc[4]:loc[5]] + " " + src[loc[6]:loc[7]] + "}}", true
	})
}

// expandTags breaks block-level elements, and structural template tags
// on lines that are not single-line constructs, onto their own lines.
// Raw lines pass through untouched.
func expandTags(p *config.Profile, src string) string {
	spans := RawSpans(p, src)
	var out []string
	offset := 0
	for _, line := range strings.Split(src, "\n") {
		end := offset + len(line)
		if strings.TrimSpace(line) == "" || InSpans(spans, offset, end) {
			out = append(out, line)
		} else {
			out = append(out, expandLine(p, line)...)
		}
		offset = end + 1
	}
	return strings.Join(out, "\n")
}

func expandLine(p *config.Profile, line string) []string {
	marked := p.TagMatch.ReplaceAllStringFunc(line, func(tag string) string {
		m := p.TagMatch.FindStringSubmatch(tag)
		if !p.IsBreakTag(m[2]) {
			return tag
		}
		return "\n" + tag + "\n"
	})
	if p.BreakTemplateTags != nil && !IsSingleLineTag(p, strings.TrimSpace(line)) {
		marked = p.BreakTemplateTags.ReplaceAllStringFunc(marked, func(tag string) string {
			return "\n" + tag + "\n"
		})
	}
	pieces := strings.Split(marked, "\n")
	out := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if strings.TrimSpace(piece) != "" {
			out = append(out, piece)
		}
	}
	return out
}
