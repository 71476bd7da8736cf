package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	LockError

	// Logging errors
	CreateLogFileError

	// Input errors
	MissingInputError
	SchemaError

	// CSV I/O errors
	OpenFileError
	CreateFileError
	ReadCSVError
	WriteCSVError

	// Pipeline errors
	TransformError
	StageError
	UnknownStageError
	CancelledError
)
