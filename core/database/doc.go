// Package database opens the GORM connection backing the sandbox record store.
//
// # Connect
//
// Connect selects the dialector from Config.Driver:
//   - sqlite (default): Name is a file path, ":memory:" keeps the store in RAM
//     and limits the pool to one connection so every query sees the same data.
//   - mysql: a DSN is built from host, port, user, password and name with
//     connection and I/O timeouts.
//
// The connection is verified with a ping before it is returned.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
package database
