// Package scheduler repeats a job on a cron schedule.
//
// Schedules use the standard five-field cron syntax or descriptors such as
// "@every 1h" and "@daily". A run that is still going when the next tick
// fires causes that tick to be skipped, so runs never overlap.
package scheduler
