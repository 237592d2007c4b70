package format

import (
	"strings"

	"github.com/yaklabco/gotplfmt/pkg/config"
)

// Attribute reflow. A tag whose attribute section reaches the
// configured limit is broken so each attribute sits on its own line,
// aligned one column past the tag name. Quoted values, template
// expressions, and brace groups are opaque to the splitter; long style
// and srcset values are additionally broken at their natural
// separators.

// reflowLineAttributes rewrites every overlong tag on an emitted line.
// Short tags pass through untouched.
func reflowLineAttributes(p *config.Profile, line string) string {
	cfg := p.Cfg
	if cfg.MaxAttributeLength <= 0 || !strings.Contains(line, "<") {
		return line
	}
	lead := leadingWhitespace(line)
	return p.AttrTag.ReplaceAllStringFunc(line, func(m string) string {
		g := p.AttrTag.FindStringSubmatch(m)
		open := g[1]
		attrs := strings.TrimSpace(g[2])
		if len(attrs) < cfg.MaxAttributeLength {
			return m
		}
		close := ">"
		if strings.Contains(g[3], "/") {
			close = " />"
		}

		spacing := lead + strings.Repeat(" ", len(open)+1)
		groups := parseAttrGroups(attrs)
		for i, grp := range groups {
			groups[i] = breakAttrValue(p, grp, spacing)
		}
		if cfg.FormatAttributeTemplateTags && p.BreakTemplateTags != nil {
			groups = indentTemplateTags(p, groups)
		}
		return open + " " + strings.Join(groups, "\n"+spacing) + close
	})
}

// parseAttrGroups splits an attribute section at top-level whitespace.
// Whitespace inside quotes or brace constructs ({{ }}, {% %}, { })
// never splits.
func parseAttrGroups(attrs string) []string {
	var groups []string
	var cur strings.Builder
	depth := 0
	var quote byte
	for i := 0; i < len(attrs); i++ {
		c := attrs[i]
		switch {
		case quote != 0:
			cur.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			cur.WriteByte(c)
		case c == '{':
			depth++
			cur.WriteByte(c)
		case c == '}':
			if depth > 0 {
				depth--
			}
			cur.WriteByte(c)
		case (c == ' ' || c == '\t') && depth == 0:
			if cur.Len() > 0 {
				groups = append(groups, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		groups = append(groups, cur.String())
	}
	return groups
}

// breakAttrValue splits the value of style and srcset attributes at
// their list separators, aligning continuation lines under the opening
// quote. Other attributes are returned as-is.
func breakAttrValue(p *config.Profile, group, spacing string) string {
	name, value, ok := strings.Cut(group, "=")
	if !ok || p.Cfg.IgnoredAttribute(name) {
		return group
	}
	var sep string
	switch strings.ToLower(name) {
	case "style":
		sep = ";"
	case "srcset", "data-srcset", "sizes":
		sep = ","
	default:
		return group
	}
	if len(value) < 2 || (value[0] != '"' && value[0] != '\'') {
		return group
	}
	quote := value[0]
	inner := strings.Trim(value, string(quote))
	parts := strings.Split(inner, sep)
	if len(parts) < 2 {
		return group
	}
	align := spacing + strings.Repeat(" ", len(name)+2)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	// A trailing separator leaves an empty final part; keep the
	// separator glued to the last real part instead.
	joined := strings.Join(dropEmpty(parts), sep+"\n"+align)
	if strings.HasSuffix(strings.TrimSpace(inner), sep) {
		joined += sep
	}
	return name + "=" + string(quote) + joined + string(quote)
}

func dropEmpty(parts []string) []string {
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// indentTemplateTags adds one indent step to attribute groups enclosed
// by structural template tags, so conditional attributes read like the
// template body does.
func indentTemplateTags(p *config.Profile, groups []string) []string {
	indent := p.Indent()
	depth := 0
	out := make([]string, 0, len(groups))
	for _, grp := range groups {
		level := depth
		switch {
		case p.TemplateUnindent != nil && p.TemplateUnindent.MatchString(grp):
			depth--
			if depth < 0 {
				depth = 0
			}
			level = depth
		case p.TemplateUnindentLine != nil && p.TemplateUnindentLine.MatchString(grp):
			level = depth - 1
			if level < 0 {
				level = 0
			}
		case p.TemplateIndent != nil && p.TemplateIndent.MatchString(grp):
			depth++
		}
		out = append(out, strings.Repeat(indent, level)+grp)
	}
	return out
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
