package envfile

import "errors"

var (
	// ErrWriteEnvFile indicates that the environment file could not be written.
	ErrWriteEnvFile = errors.New("error writing env file")
	// ErrReadEnvFile indicates that the environment file could not be read or
	// holds a malformed value.
	ErrReadEnvFile = errors.New("error reading env file")
	// ErrUnknownPreset indicates an unknown preset name.
	ErrUnknownPreset = errors.New("unknown preset")
)
