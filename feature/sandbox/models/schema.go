package models

import "inventory-seeder/core/catalog"

// Relations lists the foreign-key fields of each kind and the kind they point at.
var Relations = map[catalog.Kind]map[string]catalog.Kind{
	catalog.KindRegion:    {"parent": catalog.KindRegion},
	catalog.KindSiteGroup: {"parent": catalog.KindSiteGroup},
	catalog.KindSite: {
		"region": catalog.KindRegion,
		"group":  catalog.KindSiteGroup,
		"tenant": catalog.KindTenant,
	},
	catalog.KindLocation: {
		"site":   catalog.KindSite,
		"parent": catalog.KindLocation,
		"tenant": catalog.KindTenant,
	},
	catalog.KindRack: {
		"site":     catalog.KindSite,
		"location": catalog.KindLocation,
		"tenant":   catalog.KindTenant,
	},
	catalog.KindPlatform: {"manufacturer": catalog.KindManufacturer},
}

// ScopeFields names the relation that scopes natural-key uniqueness.
var ScopeFields = map[catalog.Kind]string{
	catalog.KindLocation: "site",
	catalog.KindRack:     "site",
}

// RequiresName reports whether the kind needs a separate name field.
// Racks use the name as their natural key.
func RequiresName(kind catalog.Kind) bool {
	return kind.KeyField() != "name"
}
