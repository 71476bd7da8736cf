package iopipeline

import (
	"errors"
	"fmt"
	"strings"

	cc0photos "github.com/gnames/cc0photos/pkg"
	"github.com/gnames/cc0photos/pkg/errcode"
	"github.com/gnames/gn"
)

// StageError prefixes an error with the name of the stage it happened
// in. The code of a *gn.Error is preserved, other errors get
// errcode.StageError.
func StageError(stage cc0photos.Stage, err error) error {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		vars := append([]any{stage}, gnErr.Vars...)
		return &gn.Error{
			Code: gnErr.Code,
			Msg:  "Stage <em>%s</em> failed\n" + gnErr.Msg,
			Vars: vars,
			Err:  fmt.Errorf("stage %s: %w", stage, gnErr.Err),
		}
	}

	return &gn.Error{
		Code: errcode.StageError,
		Msg:  "Stage <em>%s</em> failed",
		Vars: []any{stage},
		Err:  fmt.Errorf("stage %s: %w", stage, err),
	}
}

// LockError is returned when the output directory is used by another
// run.
func LockError(path string, err error) error {
	msg := `Output directory is locked by <em>%s</em>

<em>How to fix:</em>
  1. Wait until the other cc0photos run finishes
  2. Use a different output directory with --out`

	return &gn.Error{
		Code: errcode.LockError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot lock %s: %w", path, err),
	}
}

// UnknownStageError is returned for a stage name that does not exist.
func UnknownStageError(name string) error {
	var names []string
	for _, v := range cc0photos.Stages() {
		names = append(names, string(v))
	}
	valid := strings.Join(names, ", ")

	return &gn.Error{
		Code: errcode.UnknownStageError,
		Msg:  "Unknown stage <em>%s</em>, valid stages are: %s",
		Vars: []any{name, valid},
		Err:  fmt.Errorf("unknown stage %q", name),
	}
}
