package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig   = errors.New("failed to read config file")
	ErrFailedToParseConfig  = errors.New("failed to parse config file")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrInvalidBusBuffer     = errors.New("bus buffer must be greater than 0")
	ErrInvalidTreeIndent    = errors.New("tree indent must not be negative")
	ErrInvalidLogRotation   = errors.New("log rotation limits must not be negative")
	ErrFailedToLoadEnv      = errors.New("failed to load env file")
	ErrInvalidWatchDebounce = errors.New("watch debounce must be greater than 0")

	ErrFilterAnchoredToItself = errors.New("filter cannot be inserted before itself")
	ErrFilterAlreadyInModel   = errors.New("filter is already in the model")
	ErrFilterNotInModel       = errors.New("filter is not in the model")
	ErrNilFilter              = errors.New("filter must not be nil")

	ErrFailedToReadScript  = errors.New("failed to read script file")
	ErrFailedToParseScript = errors.New("failed to parse script file")
	ErrUnknownFilter       = errors.New("unknown filter")
	ErrDuplicateFilter     = errors.New("duplicate filter declaration")
	ErrNotChildModelFilter = errors.New("filter does not have children")
	ErrUnknownOperation    = errors.New("unknown operation")
	ErrInvalidModelPattern = errors.New("invalid model pattern")

	ErrFailedToWatchScript = errors.New("failed to watch script file")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
