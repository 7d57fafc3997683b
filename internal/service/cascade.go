package service

import "log/slog"

// Cascade cleanup is modeled as a saga: the primary delete is
// authoritative and unconditional, and each cleanup step runs best
// effort. Step outcomes are collected into a CascadeReport that is
// logged; nothing is ever rolled back.

// CascadeStep records one cleanup dispatch and whether the target
// accepted it.
type CascadeStep struct {
	Target string
	Action string
	OK     bool
}

// CascadeReport collects the outcomes of a delete's cascade steps.
type CascadeReport struct {
	Resource string
	Key      string
	Steps    []CascadeStep
}

// NewCascadeReport starts a report for the deletion of one entity,
// identified by its resource name and key.
func NewCascadeReport(resource, key string) *CascadeReport {
	return &CascadeReport{Resource: resource, Key: key}
}

// Add records one step outcome.
func (r *CascadeReport) Add(target, action string, ok bool) {
	r.Steps = append(r.Steps, CascadeStep{Target: target, Action: action, OK: ok})
}

// Failures returns the steps that were not accepted.
func (r *CascadeReport) Failures() []CascadeStep {
	var failed []CascadeStep
	for _, s := range r.Steps {
		if !s.OK {
			failed = append(failed, s)
		}
	}
	return failed
}

// Log writes the report. Failed steps are warnings: the primary delete
// already happened (or is about to), so there is nothing to roll back.
func (r *CascadeReport) Log() {
	failures := r.Failures()
	if len(failures) == 0 {
		slog.Info("cascade cleanup complete",
			slog.String("resource", r.Resource),
			slog.String("key", r.Key),
			slog.Int("steps", len(r.Steps)),
		)
		return
	}
	for _, f := range failures {
		slog.Warn("cascade cleanup step failed",
			slog.String("resource", r.Resource),
			slog.String("key", r.Key),
			slog.String("target", f.Target),
			slog.String("action", f.Action),
		)
	}
}
