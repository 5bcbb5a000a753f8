package calculation

import "errors"

// The three failure kinds, all detectable before a simulation starts. A failed
// call returns no result; callers branch with errors.Is.
var (
	// ErrInvalidRate is returned when freedom mode is asked to divide by a
	// non-positive safe rate.
	ErrInvalidRate = errors.New("invalid safe rate")
	// ErrInvalidHorizon is returned for horizons that cover no years.
	ErrInvalidHorizon = errors.New("invalid projection horizon")
	// ErrMissingExpense is returned when a goal mode is requested without a
	// monthly expense. Treating an absent expense as zero would silently
	// collapse the goal and mask the caller's mistake.
	ErrMissingExpense = errors.New("missing monthly expense")
)
