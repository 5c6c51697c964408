// Package sandbox serves a local inventory API for rehearsing runs.
//
// It exposes the collections of every catalog kind (dcim/regions,
// tenancy/tenants, dcim/racks, ...) with the behavior the reconciler relies
// on:
//
//   - GET /<collection>/?field=value lists objects matching every filter
//     exactly; "<relation>_id" filters on a foreign key.
//   - POST /<collection>/ creates an object. A taken natural key answers 400
//     with {"<key field>": ["... already exists."]}.
//   - PATCH /<collection>/<id>/ applies a partial update.
//
// Foreign keys are accepted as bare ids or {"id": n} and rendered nested.
// Locations and racks are unique per site. Objects are stored in a single
// GORM table as JSON documents.
package sandbox
