// Package member implements preliminary sizing and verification of the
// four connected members of a residential concrete frame: primary beam,
// short braced column, square isolated footing and ground beam.
//
// Every stage is a pure function of its input record and a
// bs8110.Parameters value; nothing is retained between calls. A stage
// given an incomplete input (a missing or non-positive required
// quantity) returns ErrIncompleteInput and no result - callers treat
// that as the idle state, not as a failure. Engineering failures
// (over-stressed section, over-loaded column, over-pressured soil) are
// reported through the verdict fields of the result, never as errors.
package member

import (
	"errors"
	"math"
)

// ErrIncompleteInput is returned when a required input quantity is
// absent or non-positive. It marks the stage as idle rather than failed.
var ErrIncompleteInput = errors.New("incomplete input")

// roundUpTo rounds x up to the next multiple of step.
func roundUpTo(x, step float64) float64 {
	return math.Ceil(x/step) * step
}
