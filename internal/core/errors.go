package core

import "errors"

var (
	// ErrDuplicateCommand is returned when a name or alias is registered twice.
	ErrDuplicateCommand = errors.New("duplicate command")

	// ErrInvalidArgument is returned by handlers on unusable arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)
