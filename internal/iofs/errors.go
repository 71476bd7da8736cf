package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/cc0photos/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateDirError is returned when a configuration, log or output
// directory cannot be created.
func CreateDirError(dir string, err error) error {
	msg := "Cannot create directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory %s: %w",
			fn.Name(), dir, err),
	}
}

// CopyFileError is returned when the default config file cannot be
// written.
func CopyFileError(file string, err error) error {
	msg := "Cannot write default config to <em>%s</em>"
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write file %s: %w",
			fn.Name(), file, err),
	}
}

// ReadFileError is returned when config.yaml cannot be read or decoded.
func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}
