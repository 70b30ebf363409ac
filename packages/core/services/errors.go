package services

import (
	"errors"
	"fmt"
)

var (
	ErrTiedScores        = errors.New("scores cannot be tied")
	ErrDuplicatePlayers  = errors.New("all four players must be different")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrMatchNotFound     = errors.New("match not found")
	ErrArchiveNotFound   = errors.New("archive not found")
	ErrDuplicateEmail    = errors.New("a player with this email already exists")
	ErrInvalidTransition = errors.New("invalid match state transition")
	ErrPeriodArchived    = errors.New("period is archived")
	ErrCurrentPeriod     = errors.New("cannot archive the current or a future period")
	ErrAlreadyArchived   = errors.New("period already archived")
	ErrNotCurrentPeriod  = errors.New("only the current period can be replayed")
)

// ValidationError reports which input field was rejected.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
