// Package seeds holds the builtin inventory tables.
//
// Each table is a named slice of catalog entities: the region hierarchy
// (continents, countries, cities), tenants, site groups, the POP sites with
// their locations and racks, manufacturers, platforms and device roles.
// Catalog assembles a selection of tables into one catalog; references to
// tables left out of the selection become external parents.
package seeds
