package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports an invalid or missing calendar configuration
	ErrConfiguration = errors.New("calendar configuration error")

	// ErrInvalidArgument reports an increment the engine cannot compute
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotConfigured is returned when an increment is requested before a work window is set
	ErrNotConfigured = fmt.Errorf("%w: work window is not set", ErrConfiguration)
)
