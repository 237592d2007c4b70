package runner

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// ambiguousExts are template extensions shared with non-HTML tooling:
// a .tpl can just as well be a Smarty file as a mail template, and
// .tmpl is used for arbitrary text templates. Those get a content
// check; the html-specific extensions are always taken at face value.
var ambiguousExts = map[string]bool{
	".tpl":  true,
	".tmpl": true,
}

// skipByLanguage reports whether a discovered file should be skipped
// based on what its content looks like. Only ambiguous extensions are
// ever skipped; detection failure keeps the file in.
func skipByLanguage(path string, content []byte) bool {
	if !ambiguousExts[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	lang := enry.GetLanguage(filepath.Base(path), content)
	if lang == "" {
		return false
	}
	if strings.Contains(lang, "HTML") || lang == "Smarty" || lang == "Text" {
		return false
	}
	return true
}
