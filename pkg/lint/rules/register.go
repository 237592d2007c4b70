package rules

import "github.com/yaklabco/gotplfmt/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewHTMLLangRule())      // T005
	registry.Register(NewImgDimensionsRule()) // T006
	registry.Register(NewImgAltRule())        // T013
	registry.Register(NewOrphanTagRule())     // T025
}

// RegisterLegacyAliases registers the H-series codes accepted for
// configurations written against the older naming scheme.
func RegisterLegacyAliases(registry *lint.Registry) {
	registry.RegisterAlias("H005", "T005")
	registry.RegisterAlias("H006", "T006")
	registry.RegisterAlias("H013", "T013")
	registry.RegisterAlias("H025", "T025")
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterLegacyAliases(lint.DefaultRegistry)
}
