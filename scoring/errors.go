package scoring

import "errors"

// Controller errors. Persistence failures from the match store pass through
// wrapped; everything below is raised by the controller itself before any
// network call is made.
var (
	ErrNotLoaded            = errors.New("match is not loaded yet")
	ErrReadOnly             = errors.New("match is read-only for this viewer")
	ErrInvalidSide          = errors.New("unknown side for score action")
	ErrLoadInFlight         = errors.New("a match fetch is already in progress")
	ErrSaveInFlight         = errors.New("a live-score save is already in progress")
	ErrFinishInFlight       = errors.New("a finish request is already in progress")
	ErrConfirmationRequired = errors.New("finishing a match requires explicit confirmation")
	ErrUnplayedMatch        = errors.New("cannot finish a match with no points scored")
)
