package iopipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/cc0photos/internal/iocsv"
	cc0photos "github.com/gnames/cc0photos/pkg"
	"github.com/gnames/cc0photos/pkg/filter"
	"github.com/gnames/cc0photos/pkg/refnames"
	"github.com/gnames/cc0photos/pkg/table"
	"github.com/gnames/gn"
)

// observations builds the reference of common names and streams
// observations through it.
func (p *pipeline) observations(
	ctx context.Context,
	sum *cc0photos.Summary,
) (cc0photos.StageReport, error) {
	ref, err := p.reference()
	if err != nil {
		return cc0photos.StageReport{Stage: cc0photos.StageObservations}, err
	}
	sum.ReferenceSize = ref.Len()

	transform := filter.Observations(ref, p.cfg.Filter.DatasetName)
	return p.stream(ctx, cc0photos.StageObservations, iocsv.StreamOptions{
		Src:       p.cfg.Input.Observations,
		Dst:       p.cfg.ObservationsPath(),
		Required:  filter.ObservationsRequired,
		Transform: transform,
	})
}

// reference loads taxonomy and vernacular names into memory.
func (p *pipeline) reference() (*refnames.Reference, error) {
	slog.Info("Loading reference tables",
		"taxa", p.cfg.Input.Taxa,
		"vernaculars", p.cfg.Input.Vernaculars,
	)

	taxa, err := iocsv.ReadAll(p.cfg.Input.Taxa)
	if err != nil {
		return nil, err
	}
	vern, err := iocsv.ReadAll(p.cfg.Input.Vernaculars)
	if err != nil {
		return nil, err
	}

	norm := refnames.Verbatim()
	if p.cfg.Filter.MatchCanonical {
		norm = refnames.Canonical()
	}

	res, err := refnames.Build(taxa, vern,
		refnames.OptRank(p.cfg.Filter.TaxonRank),
		refnames.OptNormalizer(norm),
	)
	if err != nil {
		return nil, err
	}

	slog.Info("Reference of common names is ready",
		"taxa", taxa.Len(),
		"vernaculars", vern.Len(),
		"names", res.Len(),
		"match_canonical", p.cfg.Filter.MatchCanonical,
	)
	gn.Message("<em>%s</em> %s names have common names",
		humanize.Comma(int64(res.Len())), p.cfg.Filter.TaxonRank)
	return res, nil
}

func (p *pipeline) media(ctx context.Context) (cc0photos.StageReport, error) {
	transform := filter.Media(p.cfg.Filter.License, p.cfg.Filter.MediaType)
	return p.stream(ctx, cc0photos.StageMedia, iocsv.StreamOptions{
		Src:       p.cfg.Input.Media,
		Dst:       p.cfg.MediaPath(),
		Required:  filter.MediaRequired,
		Transform: transform,
	})
}

// stream runs a streamed stage with a progress bar.
func (p *pipeline) stream(
	ctx context.Context,
	stage cc0photos.Stage,
	opts iocsv.StreamOptions,
) (cc0photos.StageReport, error) {
	res := cc0photos.StageReport{Stage: stage, Output: opts.Dst}

	bar := newProgress(p.cfg.WithProgress, string(stage)+": ")
	defer bar.finish()

	opts.BatchSize = p.cfg.ChunkSize
	opts.OnStart = bar.start
	opts.OnProgress = func(pr iocsv.Progress) {
		bar.update(pr)
		slog.Debug("Batch written",
			"stage", stage,
			"batch", pr.Batch,
			"rows", pr.Rows,
			"bytes_read", pr.BytesRead,
		)
	}

	stats, err := iocsv.Stream(ctx, opts)
	res.BytesRead = stats.BytesRead
	res.RowsRead = stats.RowsRead
	res.RowsWritten = stats.RowsWritten
	res.Batches = stats.Batches
	res.Duration = stats.Duration
	return res, err
}

// merge joins both intermediate files in memory.
func (p *pipeline) merge() (cc0photos.StageReport, error) {
	start := time.Now()
	res := cc0photos.StageReport{
		Stage:  cc0photos.StageMerge,
		Output: p.cfg.FinalPath(),
	}

	media, err := iocsv.ReadAll(p.cfg.MediaPath())
	if err != nil {
		return res, err
	}
	obs, err := iocsv.ReadAll(p.cfg.ObservationsPath())
	if err != nil {
		return res, err
	}
	// a zero-byte source gives a zero-byte intermediate
	if len(media.Header) == 0 {
		media = table.New(filter.MediaOutput, nil)
	}
	if len(obs.Header) == 0 {
		obs = table.New(filter.ObservationsOutput, nil)
	}
	res.RowsRead = media.Len() + obs.Len()

	merged, err := filter.Merge(media, obs)
	if err != nil {
		return res, err
	}

	if err = iocsv.WriteAll(res.Output, merged); err != nil {
		return res, err
	}

	res.RowsWritten = merged.Len()
	res.Duration = time.Since(start)
	return res, nil
}
