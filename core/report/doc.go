// Package report renders reconciliation outcomes.
//
// Reporters are pure sinks: they receive each result in processing order via
// Observe and the completed run via Finish. Nothing they do feeds back into
// reconciliation.
//
//   - Console prints an aligned outcome table and a summary line.
//   - JSON writes the whole run as a JSON document.
//   - Archive uploads the JSON run report to object storage.
//   - Multi fans out to several reporters.
//
// WriteFailures lists the natural keys that did not resolve, for stderr.
package report
