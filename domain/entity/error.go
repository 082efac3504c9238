package entity

import "github.com/HMasataka/errs"

// Config related errors
var (
	ErrConfigParseFailed    *errs.Error = errs.New("failed to parse arguments")
	ErrInvalidPlayerCount   *errs.Error = errs.New("player count must not be negative")
	ErrInvalidCourtCount    *errs.Error = errs.New("court count must not be negative")
	ErrInvalidRoundCount    *errs.Error = errs.New("round count must be positive")
	ErrLoggerCreationFailed *errs.Error = errs.New("failed to create logger")
)

// Output related errors
var (
	ErrOutputCreateFailed *errs.Error = errs.New("failed to create output file")
	ErrOutputWriteFailed  *errs.Error = errs.New("failed to write output file")
	ErrOutputCloseFailed  *errs.Error = errs.New("failed to close output file")
)

// Schedule related errors
var (
	ErrScheduleCanceled *errs.Error = errs.New("schedule generation canceled")
)
