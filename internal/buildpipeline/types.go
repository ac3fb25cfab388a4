// Package buildpipeline orchestrates turning a loaded Module into
// lowered basic blocks and, optionally, on-disk IR dumps, reporting
// progress per function along the way.
package buildpipeline

import "time"

// Stage describes a high-level pipeline phase.
type Stage string

const (
	// StageLoad covers reading the project manifest and resolving or
	// deserializing the compiled module.
	StageLoad Stage = "load"
	// StageLower covers Clean and GenerateBasicBlocks for one function.
	StageLower Stage = "lower"
	// StageEmit covers writing IR dumps or a refreshed module cache.
	StageEmit Stage = "emit"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the unit is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the unit is currently being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the unit finished successfully.
	StatusDone Status = "done"
	// StatusError indicates the unit failed.
	StatusError Status = "error"
)

// Event reports progress for one function (or for the overall
// pipeline when Func is empty).
type Event struct {
	Func    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds stage durations.
type Timings struct {
	stages map[Stage]time.Duration
}

func (t *Timings) ensure() {
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
}

// Set stores a duration for the given stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.ensure()
	t.stages[stage] = dur
}

// Has reports whether a duration for stage is recorded.
func (t Timings) Has(stage Stage) bool {
	if t.stages == nil {
		return false
	}
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	if t.stages == nil {
		return 0
	}
	return t.stages[stage]
}

// Sum returns the sum of durations across the provided stages.
func (t Timings) Sum(stages ...Stage) time.Duration {
	if t.stages == nil {
		return 0
	}
	var total time.Duration
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
