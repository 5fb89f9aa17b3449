// Copyright © 2022 The Gomon Project.

package process

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable reports that the process information source could not be opened.
	ErrUnavailable = errors.New("process information unavailable")

	// ErrEmpty reports that the source yielded no usable process records.
	ErrEmpty = errors.New("no process information retrieved")

	// ErrMalformed reports a status record that does not parse.
	ErrMalformed = errors.New("malformed status record")

	// ErrInconsistent reports a status record whose pid differs from the pid it was read for.
	ErrInconsistent = errors.New("inconsistent status record")
)

// StatusError records the failure to read one process' status.
type StatusError struct {
	Pid Pid
	Err error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pid %d: %v", e.Pid, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
