// Package iopipeline implements the Pipeline interface. It runs the
// observations, media and merge stages over CSV files.
// This is an impure I/O package.
package iopipeline

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/cc0photos/internal/iofs"
	cc0photos "github.com/gnames/cc0photos/pkg"
	"github.com/gnames/cc0photos/pkg/config"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gofrs/flock"
)

type pipeline struct {
	cfg *config.Config
}

// New creates a Pipeline that reads inputs and writes outputs
// described by cfg.
func New(cfg *config.Config) cc0photos.Pipeline {
	return &pipeline{cfg: cfg}
}

// Run executes stages in their dependency order. The output directory
// is created if needed and locked for the duration of the run.
func (p *pipeline) Run(
	ctx context.Context,
	stages ...cc0photos.Stage,
) (cc0photos.Summary, error) {
	var res cc0photos.Summary
	startTime := time.Now()

	plan, err := planStages(stages)
	if err != nil {
		return res, err
	}

	if err = iofs.EnsureOutputDir(p.cfg.Output.Dir); err != nil {
		return res, err
	}

	unlock, err := p.lock()
	if err != nil {
		return res, err
	}
	defer unlock()

	slog.Info("Starting pipeline",
		"stages", strings.Join(stageNames(plan), ","),
		"output_dir", p.cfg.Output.Dir,
		"chunk_size", p.cfg.ChunkSize,
	)

	for i, stage := range plan {
		if err = ctx.Err(); err != nil {
			return res, StageError(stage, err)
		}

		gn.Info("(%d/%d) %s", i+1, len(plan), stageTitle(stage))
		slog.Info("Starting stage", "stage", stage)

		var rep cc0photos.StageReport
		switch stage {
		case cc0photos.StageObservations:
			rep, err = p.observations(ctx, &res)
		case cc0photos.StageMedia:
			rep, err = p.media(ctx)
		case cc0photos.StageMerge:
			rep, err = p.merge()
		}
		if err != nil {
			slog.Error("Stage failed", "stage", stage, "error", err)
			return res, StageError(stage, err)
		}

		res.Reports = append(res.Reports, rep)
		logReport(rep)
	}

	res.Duration = time.Since(startTime)
	slog.Info("Pipeline complete",
		"stages", len(plan),
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	gn.Info("Pipeline complete. Elapsed time: <em>%s</em>",
		gnfmt.TimeString(res.Duration.Seconds()))

	return res, nil
}

// lock takes an exclusive lock of the output directory. The returned
// function releases it.
func (p *pipeline) lock() (func(), error) {
	path := p.cfg.LockPath()
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, LockError(path, err)
	}
	if !ok {
		return nil, LockError(path, errors.New("held by another process"))
	}

	slog.Debug("Output directory locked", "lock", path)
	return func() {
		if err := fl.Unlock(); err != nil {
			slog.Warn("Cannot release lock", "lock", path, "error", err)
		}
	}, nil
}

// planStages validates requested stages and sorts them in dependency
// order. Duplicates are ignored. No stages means all of them.
func planStages(stages []cc0photos.Stage) ([]cc0photos.Stage, error) {
	all := cc0photos.Stages()
	if len(stages) == 0 {
		return all, nil
	}

	for _, v := range stages {
		if !slices.Contains(all, v) {
			return nil, UnknownStageError(string(v))
		}
	}

	var res []cc0photos.Stage
	for _, v := range all {
		if slices.Contains(stages, v) {
			res = append(res, v)
		}
	}
	return res, nil
}

func stageNames(stages []cc0photos.Stage) []string {
	res := make([]string, len(stages))
	for i, v := range stages {
		res[i] = string(v)
	}
	return res
}

func stageTitle(stage cc0photos.Stage) string {
	switch stage {
	case cc0photos.StageObservations:
		return "Filtering observations with common names"
	case cc0photos.StageMedia:
		return "Filtering CC0 photos"
	case cc0photos.StageMerge:
		return "Merging photos with common names"
	default:
		return string(stage)
	}
}

func logReport(rep cc0photos.StageReport) {
	slog.Info("Stage complete",
		"stage", rep.Stage,
		"output", rep.Output,
		"rows_read", rep.RowsRead,
		"rows_written", rep.RowsWritten,
		"bytes_read", rep.BytesRead,
		"batches", rep.Batches,
		"duration", gnfmt.TimeString(rep.Duration.Seconds()),
	)

	msg := "<em>%s</em> of <em>%s</em> rows written to %s"
	vars := []any{
		humanize.Comma(int64(rep.RowsWritten)),
		humanize.Comma(int64(rep.RowsRead)),
		rep.Output,
	}
	if rep.BytesRead > 0 {
		msg += " (%s read)"
		vars = append(vars, humanize.Bytes(uint64(rep.BytesRead)))
	}
	gn.Message(msg, vars...)
}
