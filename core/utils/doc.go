// Package utils provides small conversion helpers shared by the API client,
// the reconciler and the sandbox server. Values decoded from JSON, YAML or
// TOML arrive as different numeric types; these helpers normalise them.
package utils
