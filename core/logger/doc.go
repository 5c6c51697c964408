// Package logger provides a structured logging facility based on Zap.
//
// New builds a logger for development (debug level, console friendly) or
// production (json by default). Console output disables stack traces so CLI
// runs stay readable.
//
// # Correlation
//
//   - WithRunID tags every entry of a reconciliation run with its run id, so
//     the log lines of scheduled runs can be told apart.
//   - WithRayID extracts the request id set by the sandbox middleware from a
//     Fiber context.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, run.ID)
//	log.Info("Entity reconciled", zap.String("key", "china"))
package logger
