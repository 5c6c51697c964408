// Package catalog describes the inventory records to provision.
//
// A Catalog is a static, declaration-ordered collection of Entity values.
// Each entity has a Kind, a natural key (a slug, or a name for racks), a set
// of scalar attributes and zero or more parent references that point at other
// entities by kind and natural key.
//
// # Kinds
//
// Every Kind knows the REST collection it lives in and the field holding its
// natural key:
//
//	region        dcim/regions        slug
//	tenant        tenancy/tenants     slug
//	site-group    dcim/site-groups    slug
//	site          dcim/sites          slug
//	location      dcim/locations      slug
//	rack          dcim/racks          name
//	manufacturer  dcim/manufacturers  slug
//	platform      dcim/platforms      slug
//	device-role   dcim/device-roles   slug
//
// # Scoped Keys
//
// Locations are unique per site and racks are unique by name per site. A
// parent reference flagged as Scope narrows the remote lookup to that
// parent, and the catalog identity of the entity becomes the qualified key
// "<scope key>/<key>" (for example "pop1-shcec/G4").
//
// # Files
//
// Catalogs can be loaded from YAML or TOML files (see LoadFile):
//
//	entities:
//	  - kind: region
//	    key: shanghai
//	    attributes: {name: Shanghai}
//	    parents:
//	      - {kind: region, key: china, field: parent, mutable: true}
package catalog
