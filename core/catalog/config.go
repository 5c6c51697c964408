package catalog

// Config selects the entity sources of a run.
type Config struct {
	// Files are catalog files (.yaml, .yml, .toml) merged after the builtin tables.
	Files []string `mapstructure:"files" default:""`
	// Tables selects builtin tables by name; empty selects all of them.
	Tables []string `mapstructure:"tables" default:""`
	// Builtin includes the builtin tables at all.
	Builtin bool `mapstructure:"builtin" default:"true"`
}
