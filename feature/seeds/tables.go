package seeds

import (
	"fmt"
	"strings"

	"inventory-seeder/core/catalog"
)

// Table is a named group of builtin entities.
type Table struct {
	Name        string
	Description string
	entities    func() []catalog.Entity
}

// Entities returns a fresh copy of the table's entities.
func (t Table) Entities() []catalog.Entity {
	return t.entities()
}

var tables = []Table{
	{Name: "regions", Description: "continents, countries and cities", entities: regions},
	{Name: "tenants", Description: "operating companies", entities: tenants},
	{Name: "site-groups", Description: "site classification", entities: siteGroups},
	{Name: "pops", Description: "POP sites with their locations and racks", entities: pops},
	{Name: "manufacturers", Description: "hardware and software vendors", entities: manufacturers},
	{Name: "platforms", Description: "network and server operating systems", entities: platforms},
	{Name: "roles", Description: "device roles", entities: roles},
}

// Tables lists the builtin tables in dependency-friendly order.
func Tables() []Table {
	out := make([]Table, len(tables))
	copy(out, tables)
	return out
}

// Lookup returns the table with the given name.
func Lookup(name string) (Table, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Catalog builds a catalog from the named tables, or from all tables when
// no name is given. Tables are added in their builtin order.
func Catalog(names ...string) (*catalog.Catalog, error) {
	selected := make(map[string]bool, len(names))
	for _, name := range names {
		t, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown table %q", name)
		}
		selected[t.Name] = true
	}

	var entities []catalog.Entity
	for _, t := range tables {
		if len(selected) > 0 && !selected[t.Name] {
			continue
		}
		entities = append(entities, t.Entities()...)
	}
	return catalog.New(entities...)
}

func entity(kind catalog.Kind, key string, attrs map[string]any, parents ...catalog.ParentRef) catalog.Entity {
	return catalog.Entity{Kind: kind, Key: key, Attributes: attrs, Parents: parents}
}
