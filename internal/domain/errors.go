package domain

import "errors"

var (
	// ErrInvalidDuration indicates a string that is not an HH:MM duration.
	ErrInvalidDuration = errors.New("invalid HH:MM duration")
	// ErrInvalidOperation indicates a CLI token outside the closed operation set.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidProjects indicates project configuration that fails structural validation.
	ErrInvalidProjects = errors.New("invalid project configuration")
	// ErrOverAllocation indicates sub-project time exceeding the day's total worked time.
	ErrOverAllocation = errors.New("sub-project time exceeds total worked time")
)
