// Package inventory is a thin client for a NetBox-style REST inventory API.
//
// The API exposes one collection per record kind:
//
//	GET   /api/<collection>/?<field>=<value>   -> {"count": n, "results": [...]}
//	POST  /api/<collection>/                   -> created record
//	PATCH /api/<collection>/<id>/              -> updated record
//
// The client owns the token header and the TLS trust policy. TLS
// verification can be turned off for self-signed internal endpoints.
//
// No retries are performed here. Network failures surface as *TransportError
// and non-2xx responses as *APIError; callers decide whether to continue.
// IsDuplicate recognises the API's "already exists" validation errors.
//
// # Usage
//
//	client, err := inventory.NewClient(cfg.Inventory)
//	rec, found, err := client.Find(ctx, catalog.KindRegion, inventory.Filter{"slug": "china"})
package inventory
