// Package iocsv reads and writes comma-separated files. It loads small
// files into memory and streams large ones in batches.
// This is an impure I/O package.
package iocsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/gnames/cc0photos/pkg/table"
)

const bom = "\uFEFF"

// openSource opens a file for reading and returns its size.
func openSource(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, MissingInputError(path, err)
	}
	if err != nil {
		return nil, 0, OpenFileError(path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, OpenFileError(path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, OpenFileError(path, fmt.Errorf("%s is a directory", path))
	}
	return f, info.Size(), nil
}

// reader wraps csv.Reader. Rows may be shorter than the header (missing
// cells are null), but not longer.
type reader struct {
	*csv.Reader
	fields int
}

func newReader(r io.Reader) *reader {
	res := &reader{Reader: csv.NewReader(r)}
	res.FieldsPerRecord = -1
	res.LazyQuotes = true
	return res
}

// header reads the first record. It returns io.EOF for an empty file.
func (r *reader) header() ([]string, error) {
	res, err := r.Read()
	if err != nil {
		return nil, err
	}
	if len(res) > 0 {
		res[0] = strings.TrimPrefix(res[0], bom)
	}
	r.fields = len(res)
	return res, nil
}

func (r *reader) row() ([]string, error) {
	res, err := r.Read()
	if err != nil {
		return nil, err
	}
	if len(res) > r.fields {
		line, _ := r.FieldPos(0)
		return nil, &csv.ParseError{
			StartLine: line,
			Line:      line,
			Err: fmt.Errorf("expected %d fields, saw %d",
				r.fields, len(res)),
		}
	}
	return res, nil
}

// ReadAll loads a whole CSV file with a header into memory.
// A zero-length file gives a Table without columns.
func ReadAll(path string) (*table.Table, error) {
	f, _, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := newReader(f)
	header, err := r.header()
	if err == io.EOF {
		return table.New(nil, nil), nil
	}
	if err != nil {
		return nil, ReadCSVError(path, err)
	}

	var rows [][]string
	for {
		row, err := r.row()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ReadCSVError(path, err)
		}
		rows = append(rows, row)
	}
	return table.New(header, rows), nil
}

// WriteAll writes a Table with its header to a file, replacing the file
// if it exists.
func WriteAll(path string, t *table.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return CreateFileError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = CreateFileError(path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err = writeRows(w, t.Header, t.Rows); err != nil {
		return WriteCSVError(path, err)
	}
	return nil
}

// writeRows writes an optional header and rows, then flushes.
func writeRows(w *csv.Writer, header []string, rows [][]string) error {
	if header != nil {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	for _, v := range rows {
		if err := w.Write(v); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
