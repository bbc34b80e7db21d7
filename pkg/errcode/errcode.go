package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteConfigError
	ReadConfigError

	// Logging errors
	CreateLogFileError

	// Input errors
	InputTableMissingError
	TSVHeaderError
	TSVReadError

	// Build errors
	BuildCancelledError

	// Output errors
	OutputLockedError
	WriteOutputError
	CompressError
	SQLiteExportError
)
