package catalog

import (
	"fmt"
	"strings"
)

// Kind identifies the type of an inventory record.
type Kind string

const (
	KindRegion       Kind = "region"
	KindTenant       Kind = "tenant"
	KindSiteGroup    Kind = "site-group"
	KindSite         Kind = "site"
	KindLocation     Kind = "location"
	KindRack         Kind = "rack"
	KindManufacturer Kind = "manufacturer"
	KindPlatform     Kind = "platform"
	KindDeviceRole   Kind = "device-role"
)

// kindInfo holds the REST mapping of a kind.
type kindInfo struct {
	collection string
	keyField   string
}

var kinds = map[Kind]kindInfo{
	KindRegion:       {collection: "dcim/regions", keyField: "slug"},
	KindTenant:       {collection: "tenancy/tenants", keyField: "slug"},
	KindSiteGroup:    {collection: "dcim/site-groups", keyField: "slug"},
	KindSite:         {collection: "dcim/sites", keyField: "slug"},
	KindLocation:     {collection: "dcim/locations", keyField: "slug"},
	KindRack:         {collection: "dcim/racks", keyField: "name"},
	KindManufacturer: {collection: "dcim/manufacturers", keyField: "slug"},
	KindPlatform:     {collection: "dcim/platforms", keyField: "slug"},
	KindDeviceRole:   {collection: "dcim/device-roles", keyField: "slug"},
}

// scopes maps kinds whose natural key is only unique per parent record to
// that parent's kind and payload field.
var scopes = map[Kind]struct {
	kind  Kind
	field string
}{
	KindLocation: {kind: KindSite, field: "site"},
	KindRack:     {kind: KindSite, field: "site"},
}

// Kinds returns all known kinds in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindRegion,
		KindTenant,
		KindSiteGroup,
		KindSite,
		KindLocation,
		KindRack,
		KindManufacturer,
		KindPlatform,
		KindDeviceRole,
	}
}

// ParseKind converts a user supplied name into a Kind.
// Matching is case-insensitive and accepts "_" as well as "-".
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	switch k {
	case "sitegroup":
		k = KindSiteGroup
	case "devicerole", "role":
		k = KindDeviceRole
	}
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("unknown kind %q", s)
	}
	return k, nil
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Collection returns the API collection path, e.g. "dcim/regions".
func (k Kind) Collection() string {
	return kinds[k].collection
}

// KeyField returns the name of the field holding the natural key.
func (k Kind) KeyField() string {
	return kinds[k].keyField
}

// Scope returns the parent kind and field that scope the natural key of k.
// A qualified key "<scope>/<key>" of k names the scope parent by its key.
func (k Kind) Scope() (Kind, string, bool) {
	s, ok := scopes[k]
	return s.kind, s.field, ok
}

func (k Kind) String() string {
	return string(k)
}
