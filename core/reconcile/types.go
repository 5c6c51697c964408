package reconcile

import (
	"time"

	"inventory-seeder/core/catalog"
)

// Status is the per-entity outcome of a run.
type Status string

const (
	// StatusCreated means the record was absent and has been created.
	StatusCreated Status = "created"
	// StatusAlreadyExists means the record was found by natural key.
	StatusAlreadyExists Status = "already-exists"
	// StatusUpdated means the record existed and a drifted relationship was patched.
	StatusUpdated Status = "updated"
	// StatusSkipped means a required parent could not be resolved.
	StatusSkipped Status = "skipped"
	// StatusFailed means the API rejected a request or could not be reached.
	StatusFailed Status = "failed"
)

// OK reports whether the status counts as a successful resolution.
func (s Status) OK() bool {
	switch s {
	case StatusCreated, StatusAlreadyExists, StatusUpdated:
		return true
	default:
		return false
	}
}

// Outcome describes what happened to one entity.
type Outcome struct {
	// Status is the outcome class.
	Status Status `json:"status"`

	// ID is the remote id, set for successful outcomes.
	ID int `json:"id,omitempty"`

	// Detail explains skips, failures and patches.
	Detail string `json:"detail,omitempty"`

	// Err is the underlying error for Skipped and Failed outcomes.
	Err error `json:"-"`
}

// Result pairs an entity with its outcome.
type Result struct {
	// Kind is the entity kind.
	Kind catalog.Kind `json:"kind"`

	// Key is the qualified natural key.
	Key string `json:"key"`

	// Name is the display name of the entity.
	Name string `json:"name"`

	Outcome

	// Entity is the catalog definition that was processed.
	Entity catalog.Entity `json:"-"`
}

// Ref returns the catalog ref of the result's entity.
func (r Result) Ref() catalog.Ref {
	return catalog.Ref{Kind: r.Kind, Key: r.Key}
}

// Summary provides aggregate counts for a run.
type Summary struct {
	Total         int `json:"total"`
	Created       int `json:"created"`
	AlreadyExists int `json:"already_exists"`
	Updated       int `json:"updated"`
	Skipped       int `json:"skipped"`
	Failed        int `json:"failed"`
}

// add counts one outcome.
func (s *Summary) add(status Status) {
	s.Total++
	switch status {
	case StatusCreated:
		s.Created++
	case StatusAlreadyExists:
		s.AlreadyExists++
	case StatusUpdated:
		s.Updated++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
}

// Succeeded returns the number of successfully resolved entities.
func (s Summary) Succeeded() int {
	return s.Created + s.AlreadyExists + s.Updated
}

// Run is the report of one reconciliation pass.
type Run struct {
	// ID uniquely identifies the run in logs and archived reports.
	ID string `json:"run_id"`

	// Started and Finished bound the pass.
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`

	// Results lists outcomes in processing order.
	Results []Result `json:"results"`

	// Summary aggregates the outcomes.
	Summary Summary `json:"summary"`
}

// OK reports whether every entity ended in Created, AlreadyExists or Updated.
func (r *Run) OK() bool {
	return r.Summary.Skipped == 0 && r.Summary.Failed == 0
}

// Failures returns the Skipped and Failed results in processing order.
func (r *Run) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Status.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Observer receives results in processing order.
type Observer interface {
	Observe(Result)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Result)

// Observe calls f(r).
func (f ObserverFunc) Observe(r Result) {
	f(r)
}
