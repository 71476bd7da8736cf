// Package cc0photos describes the top-level contract of the pipeline that
// joins iNaturalist taxonomy, vernacular names and GBIF observations with
// media into a CSV file of CC0 photographs annotated with common names.
package cc0photos

import (
	"context"
	"time"
)

// Stage is a name of a pipeline step that produces an output file.
type Stage string

const (
	// StageObservations streams observations, keeps research-grade records
	// that have a common name.
	StageObservations Stage = "observations"
	// StageMedia streams media, keeps CC0 still images.
	StageMedia Stage = "media"
	// StageMerge joins the two intermediate files in memory.
	StageMerge Stage = "merge"
)

// Stages returns all stages in their dependency order.
func Stages() []Stage {
	return []Stage{StageObservations, StageMedia, StageMerge}
}

// Pipeline runs stages of the CC0 photos pipeline.
type Pipeline interface {
	// Run executes requested stages in dependency order. If no stages are
	// given, all of them are executed. The first failure aborts the run.
	Run(ctx context.Context, stages ...Stage) (Summary, error)
}

// StageReport describes the result of one stage.
type StageReport struct {
	Stage Stage
	// Output is the path of the file written by the stage.
	Output string
	// BytesRead is the number of source bytes consumed.
	BytesRead int64
	// RowsRead is the number of data rows read from the sources.
	RowsRead int
	// RowsWritten is the number of data rows written to Output.
	RowsWritten int
	// Batches is the number of batches streamed (zero for in-memory stages).
	Batches  int
	Duration time.Duration
}

// Summary collects reports of all executed stages.
type Summary struct {
	// ReferenceSize is the number of scientific names that received
	// a common name. It is zero if the observations stage did not run.
	ReferenceSize int
	Reports       []StageReport
	Duration      time.Duration
}
