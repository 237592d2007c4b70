package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Profile is a Config plus the compiled pattern set for one template
// dialect. Compilation happens once per run; an invalid pattern or an
// unknown profile name is a fatal startup error, before any document is
// touched.
type Profile struct {
	Name string
	Cfg  *Config

	// HTMLOpen matches an opening HTML tag at the start of a stripped
	// line; HTMLClose the corresponding closing tag.
	HTMLOpen  *regexp.Regexp
	HTMLClose *regexp.Regexp

	// TemplateIndent / TemplateUnindent / TemplateUnindentLine are the
	// dialect's block open, block close, and dedent-only markers.
	// Nil for the plain HTML profile.
	TemplateIndent       *regexp.Regexp
	TemplateUnindent     *regexp.Regexp
	TemplateUnindentLine *regexp.Regexp

	// BreakTemplateTags matches a complete structural template tag that
	// the expand pass and the attribute reflower place on its own line.
	BreakTemplateTags *regexp.Regexp

	// AttrTag matches an element tag with at least one attribute; the
	// reflower splits its attribute list when it grows past the limit.
	AttrTag *regexp.Regexp

	// SetOpen matches the start of a set assignment; nil when the
	// dialect has no set construct.
	SetOpen *regexp.Regexp

	// SLTTemplateTags are the template tag names whose balanced
	// open/end pair may stay on a single line.
	SLTTemplateTags []string

	// IgnoredInline matches a complete one-line raw construct.
	IgnoredInline *regexp.Regexp

	// Raw-region bookkeeping patterns.
	IgnoredOpen      *regexp.Regexp
	IgnoredClose     *regexp.Regexp
	ScriptStyleOpen  *regexp.Regexp
	ScriptStyleClose *regexp.Regexp
	SafeClosing      *regexp.Regexp

	// TagMatch finds any start or end tag; shared by the attribute
	// reflower and the orphan-tag rule.
	TagMatch *regexp.Regexp

	selfClosing map[string]bool
	htmlTags    map[string]bool
	breakTags   map[string]bool
	sltTemplate map[string]bool
}

// htmlTagNames are every element the indent engine is willing to treat
// as structural. Void elements are listed separately.
const htmlTagNames = "a|abbr|acronym|address|article|aside|audio|b|blockquote|body|button|canvas|caption|center|cite|code|colgroup|data|datalist|dd|del|details|dfn|dialog|div|dl|dt|em|fieldset|figcaption|figure|footer|form|h1|h2|h3|h4|h5|h6|head|header|hgroup|html|i|iframe|ins|kbd|label|legend|li|main|map|mark|menu|meter|nav|noscript|object|ol|optgroup|option|output|p|picture|progress|q|rp|rt|ruby|s|samp|section|select|small|span|strong|sub|summary|sup|table|tbody|td|template|tfoot|th|thead|time|title|tr|u|ul|var|video"

const voidTagNames = "area|base|br|col|command|embed|hr|img|input|keygen|link|meta|param|source|track|wbr"

// breakTagNames are the block-level elements the expand pre-pass moves
// onto their own lines. Inline elements (span, i, b, a, ...) are
// deliberately absent so short inline markup survives on one line.
const breakTagNames = "address|article|aside|blockquote|body|button|caption|colgroup|dd|details|dialog|div|dl|dt|fieldset|figcaption|figure|footer|form|h1|h2|h3|h4|h5|h6|head|header|hgroup|html|legend|li|main|menu|nav|noscript|ol|optgroup|option|p|section|select|summary|table|tbody|td|template|tfoot|th|thead|title|tr|ul"

type dialect struct {
	indentTags      string
	unindentTags    string
	unindentLine    string
	breakTagPattern string
	setOpen         string
	sltTemplateTags []string
	extraRawOpen    string
	extraRawClose   string
}

var dialects = map[string]dialect{
	"html": {},
	"django": {
		indentTags:      `\{%-?\+?[ \t]*(?:if|ifchanged|for|blocktranslate|blocktrans|block|spaceless|compress|cache|localize|language|with|autoescape|filter)\b`,
		unindentTags:    `\{%-?\+?[ \t]*end\w+`,
		unindentLine:    `\{%-?\+?[ \t]*(?:else|elif|empty|plural)\b`,
		breakTagPattern: `\{%-?\+?[ \t]*(?:if|endif|for|endfor|else|elif|empty|block|endblock|blocktranslate|endblocktranslate|blocktrans|endblocktrans|with|endwith)\b[^}]*?%\}`,
		setOpen:         `\{%-?[ \t]*set\b`,
		sltTemplateTags: []string{"if", "for", "block", "with", "blocktrans", "blocktranslate", "filter"},
		extraRawOpen:    `\{%-?[ \t]*(?:comment|verbatim)\b`,
		extraRawClose:   `\{%-?[ \t]*end(?:comment|verbatim)\b`,
	},
	"jinja": {
		indentTags:      `\{%-?\+?[ \t]*(?:if|for|block|macro|call|filter|with|autoescape|trans)\b`,
		unindentTags:    `\{%-?\+?[ \t]*end\w+`,
		unindentLine:    `\{%-?\+?[ \t]*(?:else|elif)\b`,
		breakTagPattern: `\{%-?\+?[ \t]*(?:if|endif|for|endfor|else|elif|block|endblock|macro|endmacro|with|endwith|set|endset)\b[^}]*?%\}`,
		setOpen:         `\{%-?[ \t]*set\b`,
		sltTemplateTags: []string{"if", "for", "block", "with", "macro", "call", "filter", "trans"},
		extraRawOpen:    `\{%-?[ \t]*raw\b`,
		extraRawClose:   `\{%-?[ \t]*endraw\b`,
	},
	"nunjucks": {
		indentTags:      `\{%-?\+?[ \t]*(?:if|for|asyncEach|asyncAll|block|macro|call|filter|with)\b`,
		unindentTags:    `\{%-?\+?[ \t]*end\w+`,
		unindentLine:    `\{%-?\+?[ \t]*(?:else|elif)\b`,
		breakTagPattern: `\{%-?\+?[ \t]*(?:if|endif|for|endfor|else|elif|block|endblock|macro|endmacro|set|endset)\b[^}]*?%\}`,
		setOpen:         `\{%-?[ \t]*set\b`,
		sltTemplateTags: []string{"if", "for", "block", "macro", "call", "filter"},
		extraRawOpen:    `\{%-?[ \t]*raw\b`,
		extraRawClose:   `\{%-?[ \t]*endraw\b`,
	},
	"handlebars": {
		indentTags:      `\{\{[#^][ \t]*\w+`,
		unindentTags:    `\{\{/`,
		unindentLine:    `\{\{[ \t]*else\b`,
		breakTagPattern: `\{\{[#/^][ \t]*(?:each|if|unless|with)\b[^}]*?\}\}`,
		sltTemplateTags: []string{"if", "each", "unless", "with"},
		extraRawOpen:    `\{\{\{\{[ \t]*raw\b`,
		extraRawClose:   `\{\{\{\{/[ \t]*raw\b`,
	},
	"golang": {
		indentTags:      `\{\{-?[ \t]*(?:if|range|with|block|define)\b`,
		unindentTags:    `\{\{-?[ \t]*end\b`,
		unindentLine:    `\{\{-?[ \t]*else\b`,
		breakTagPattern: `\{\{-?[ \t]*(?:if|range|else|end|with|block|define)\b[^}]*?\}\}`,
		sltTemplateTags: []string{"if", "range", "with", "block", "define"},
	},
}

// Compile resolves the Config's profile into a Profile with all
// patterns compiled. It is the single place configuration can fail.
func Compile(cfg *Config) (*Profile, error) {
	name := strings.ToLower(cfg.Profile)
	if name == "" || name == "generic-html" {
		name = "html"
	}
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q", cfg.Profile)
	}
	if cfg.IndentSize < 0 {
		return nil, fmt.Errorf("indent_size must be >= 0, got %d", cfg.IndentSize)
	}
	if cfg.MaxAttributeLength < 0 {
		return nil, fmt.Errorf("max_attribute_length must be >= 0, got %d", cfg.MaxAttributeLength)
	}

	p := &Profile{
		Name:            name,
		Cfg:             cfg,
		SLTTemplateTags: d.sltTemplateTags,
		selfClosing:     tagSet(voidTagNames),
		htmlTags:        tagSet(htmlTagNames + "|" + voidTagNames),
		breakTags:       tagSet(breakTagNames),
		sltTemplate:     make(map[string]bool),
	}
	for _, t := range d.sltTemplateTags {
		p.sltTemplate[t] = true
	}

	var err error
	compile := func(expr string) *regexp.Regexp {
		if err != nil || expr == "" {
			return nil
		}
		var re *regexp.Regexp
		re, err = regexp.Compile(expr)
		return re
	}

	p.HTMLOpen = compile(`(?i)^<(` + htmlTagNames + `)\b`)
	p.HTMLClose = compile(`(?i)^</(` + htmlTagNames + `)[ \t]*>`)
	if d.indentTags != "" {
		p.TemplateIndent = compile(`(?i)^(?:` + d.indentTags + `)`)
		p.TemplateUnindent = compile(`(?i)^(?:` + d.unindentTags + `)`)
		p.TemplateUnindentLine = compile(`(?i)^(?:` + d.unindentLine + `)`)
		p.BreakTemplateTags = compile(`(?i)` + d.breakTagPattern)
	}
	if d.setOpen != "" {
		p.SetOpen = compile(`(?i)^` + d.setOpen)
	}

	rawOpen := `<script\b|<style\b|<pre\b|<textarea\b|<!--`
	rawClose := `</script|</style|</pre|</textarea|-->`
	inline := `<!--.*?-->|<script\b.*?</script>|<style\b.*?</style>|<pre\b.*?</pre>|<textarea\b.*?</textarea>`
	if d.indentTags != "" {
		rawOpen += `|\{#`
		rawClose += `|#\}`
		inline += `|\{#.*?#\}|\{%-?[ \t]*comment\b.*?endcomment[ \t]*-?%\}`
	}
	if d.extraRawOpen != "" {
		rawOpen += `|` + d.extraRawOpen
		rawClose += `|` + d.extraRawClose
	}

	p.IgnoredOpen = compile(`(?i)(?:` + rawOpen + `)`)
	p.IgnoredClose = compile(`(?i)(?:` + rawClose + `)`)
	p.IgnoredInline = compile(`(?i)^[ \t]*(?:` + inline + `)`)
	p.ScriptStyleOpen = compile(`(?i)<(?:script|style)\b`)
	p.ScriptStyleClose = compile(`(?i)</(?:script|style)`)

	safe := `</(?:script|style|pre|textarea)|<!--[ \t]*gotplfmt:on|\{#[ \t]*gotplfmt:on`
	if d.extraRawClose != "" {
		safe += `|` + d.extraRawClose
	}
	p.SafeClosing = compile(`(?i)^[ \t]*(?:` + safe + `)`)

	p.TagMatch = compile(`(?i)<(/?)([a-z][a-z0-9-]*)((?:"[^"]*"|'[^']*'|\{\{[^}]*\}\}|\{%[^}]*%\}|[^>"'])*?)(/?)>`)
	p.AttrTag = compile(`(?i)(<(?:` + htmlTagNames + `|` + voidTagNames + `)\b)[ \t]+((?:"[^"]*"|'[^']*'|\{\{[^}]*\}\}|\{%[^}]*%\}|[^>"'])+?)([ \t]*/?>)`)

	if err != nil {
		return nil, fmt.Errorf("compile profile %q: %w", name, err)
	}
	return p, nil
}

func tagSet(alternation string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range strings.Split(alternation, "|") {
		set[t] = true
	}
	return set
}

// Indent returns the string for one indentation level.
func (p *Profile) Indent() string { return p.Cfg.Indent() }

// IsVoidTag reports whether name is an always-self-closing element.
func (p *Profile) IsVoidTag(name string) bool {
	return p.selfClosing[strings.ToLower(name)]
}

// IsHTMLTag reports whether name is a known structural element.
func (p *Profile) IsHTMLTag(name string) bool {
	return p.htmlTags[strings.ToLower(name)]
}

// IsBreakTag reports whether the expand pass should isolate name on its
// own line.
func (p *Profile) IsBreakTag(name string) bool {
	return p.breakTags[strings.ToLower(name)]
}

// IsSLTTemplateTag reports whether a balanced {% name %}...{% endname %}
// pair may remain on one line.
func (p *Profile) IsSLTTemplateTag(name string) bool {
	return p.sltTemplate[strings.ToLower(name)]
}
