// Package server builds the sandbox HTTP server.
//
// # Configuration
//
// The Config struct defines the bind address and the API token clients must
// present. BaseURL returns the API root a reconcile run should target.
//
// # Application
//
// New wires the middleware chain (ray id, request logging, token auth) and
// mounts every enabled loader feature under /api.
package server
