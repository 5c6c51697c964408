package database

// Config holds configuration for the sandbox record store.
type Config struct {
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Name is the database name, or the file path for sqlite (":memory:" keeps it in RAM).
	Name string `mapstructure:"name" default:":memory:"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)
