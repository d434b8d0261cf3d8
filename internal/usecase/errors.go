package usecase

import (
	"errors"
	"fmt"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/schedule"
)

// Sentinel errors shared by all services. The HTTP layer maps them to
// status codes; wrap them with %w and add context.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrConfiguration         = errors.New("season configuration incomplete")
	ErrSchedulingConflict    = errors.New("scheduling conflict")
	ErrGenerationRunning     = errors.New("generation already running")
)

// ConflictError carries the structured detail of the pairing that could
// not be placed. It unwraps to ErrSchedulingConflict for status mapping.
type ConflictError struct {
	Conflict schedule.Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("scheduling conflict: round %d pairing %d: %s",
		e.Conflict.Round, e.Conflict.Seq, e.Conflict.Reason)
}

func (e *ConflictError) Unwrap() error { return ErrSchedulingConflict }
