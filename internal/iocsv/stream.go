package iocsv

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"time"

	"github.com/gnames/cc0photos/pkg/table"
)

// Progress is reported after every processed batch.
type Progress struct {
	// BytesRead is the cumulative number of source bytes consumed.
	BytesRead int64
	// BytesTotal is the size of the source file.
	BytesTotal int64
	// Rows is the cumulative number of data rows read.
	Rows int
	// Batch is the number of the batch just written, starting from 1.
	Batch int
}

// Stats summarizes a finished stream.
type Stats struct {
	BytesRead   int64
	BytesTotal  int64
	RowsRead    int
	RowsWritten int
	Batches     int
	Duration    time.Duration
}

// StreamOptions configure Stream.
type StreamOptions struct {
	// Src is the path of the CSV file to read.
	Src string
	// Dst is the path of the CSV file to create. An existing file is
	// truncated.
	Dst string
	// BatchSize is the maximum number of rows decoded at once.
	// Values less than 1 are treated as 1.
	BatchSize int
	// Required are columns Src must have. They are checked before
	// the first batch is read.
	Required []string
	// Transform is applied to every batch.
	Transform table.Transform
	// OnStart, if set, is called with the size of Src once it is opened,
	// before any rows are read.
	OnStart func(bytesTotal int64)
	// OnProgress, if set, is called after every batch is written.
	OnProgress func(Progress)
}

// Stream reads Src in batches of at most BatchSize rows, applies Transform
// to each batch and appends results to Dst. The header of the first
// transformed batch goes to Dst once, before its rows.
//
// Only one batch and its transformed result are held in memory at a time.
// A zero-length Src produces a zero-length Dst. A Src that only has
// a header produces a Dst that only has a header: Transform is called once
// with an empty batch to learn output columns.
//
// Any error stops the stream. Dst is left as is, with the batches written
// so far. The context is checked between batches.
func Stream(ctx context.Context, opts StreamOptions) (stats Stats, err error) {
	start := time.Now()
	defer func() { stats.Duration = time.Since(start) }()

	batchSize := max(opts.BatchSize, 1)

	in, size, err := openSource(opts.Src)
	if err != nil {
		return stats, err
	}
	defer in.Close()
	stats.BytesTotal = size
	if opts.OnStart != nil {
		opts.OnStart(size)
	}

	out, err := os.Create(opts.Dst)
	if err != nil {
		return stats, CreateFileError(opts.Dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = CreateFileError(opts.Dst, cerr)
		}
	}()

	r := newReader(in)
	header, err := r.header()
	if err == io.EOF {
		return stats, nil
	}
	if err != nil {
		return stats, ReadCSVError(opts.Src, err)
	}

	err = table.New(header, nil).Require(opts.Required...)
	if err != nil {
		return stats, err
	}

	w := csv.NewWriter(out)
	var rows [][]string
	var eof bool
	var res *table.Table
	for {
		if err = ctx.Err(); err != nil {
			return stats, CancelledError(opts.Src, err)
		}

		rows, eof, err = readBatch(r, batchSize)
		if err != nil {
			return stats, ReadCSVError(opts.Src, err)
		}
		if len(rows) == 0 && stats.Batches > 0 {
			break
		}

		res, err = opts.Transform(table.New(header, rows))
		if err != nil {
			return stats, TransformError(opts.Src, stats.Batches+1, err)
		}
		if res == nil {
			res = table.New(nil, nil)
		}

		var resHeader []string
		if stats.Batches == 0 {
			resHeader = res.Header
		}
		if err = writeRows(w, resHeader, res.Rows); err != nil {
			return stats, WriteCSVError(opts.Dst, err)
		}

		stats.Batches++
		stats.RowsRead += len(rows)
		stats.RowsWritten += res.Len()
		stats.BytesRead = r.InputOffset()
		if opts.OnProgress != nil {
			opts.OnProgress(Progress{
				BytesRead:  stats.BytesRead,
				BytesTotal: stats.BytesTotal,
				Rows:       stats.RowsRead,
				Batch:      stats.Batches,
			})
		}

		if eof {
			break
		}
	}

	return stats, nil
}

// readBatch reads up to n rows. The eof flag is true when the end of
// the file was reached.
func readBatch(r *reader, n int) ([][]string, bool, error) {
	rows := make([][]string, 0, min(n, 4096))
	for len(rows) < n {
		row, err := r.row()
		if err == io.EOF {
			return rows, true, nil
		}
		if err != nil {
			return nil, false, err
		}
		rows = append(rows, row)
	}
	return rows, false, nil
}
