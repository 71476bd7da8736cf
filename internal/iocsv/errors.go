package iocsv

import (
	"fmt"

	"github.com/gnames/cc0photos/pkg/errcode"
	"github.com/gnames/gn"
)

// MissingInputError creates an error for an absent input file.
func MissingInputError(path string, err error) error {
	msg := `Input file does not exist

<em>File path:</em> %s

<em>How to fix:</em>
  1. Check the path in config.yaml or command line flags
  2. If it is an intermediate file, rerun the stage that creates it`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.MissingInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing input %s: %w", path, err),
	}
}

// OpenFileError creates an error for a file that exists but cannot
// be opened.
func OpenFileError(path string, err error) error {
	msg := "Cannot open <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.OpenFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open %s: %w", path, err),
	}
}

// CreateFileError creates an error for an output file that cannot
// be created or closed.
func CreateFileError(path string, err error) error {
	msg := "Cannot create <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CreateFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create %s: %w", path, err),
	}
}

// ReadCSVError creates an error for malformed or unreadable CSV data.
func ReadCSVError(path string, err error) error {
	msg := `Cannot read CSV data from <em>%s</em>

<em>Possible causes:</em>
  - Row has more fields than the header
  - Broken quotes
  - Disk read failure`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadCSVError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read CSV %s: %w", path, err),
	}
}

// WriteCSVError creates an error for a failed write of CSV data.
func WriteCSVError(path string, err error) error {
	msg := "Cannot write CSV data to <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.WriteCSVError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write CSV %s: %w", path, err),
	}
}

// TransformError creates an error for a batch transform failure.
func TransformError(path string, batch int, err error) error {
	msg := "Cannot process batch <em>%d</em> of <em>%s</em>"
	vars := []any{batch, path}

	return &gn.Error{
		Code: errcode.TransformError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("transform of batch %d of %s: %w", batch, path, err),
	}
}

// CancelledError creates an error for a stream stopped by its context.
func CancelledError(path string, err error) error {
	msg := "Processing of <em>%s</em> was cancelled"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("processing of %s cancelled: %w", path, err),
	}
}
