package frame

import (
	"fmt"
	"math"

	"github.com/cbsinteractive/pkg/video"
)

// Rate is a validated frame rate in frames per second. The zero value is
// not a usable rate; build one with NewRate or RateFromFramerate.
type Rate float64

// Common frame rates
var (
	Rate23_976 = Rate(24000.0 / 1001)
	Rate24     = Rate(24)
	Rate25     = Rate(25)
	Rate29_97  = Rate(30000.0 / 1001)
	Rate30     = Rate(30)
	Rate50     = Rate(50)
	Rate59_94  = Rate(60000.0 / 1001)
	Rate60     = Rate(60)
)

// ConfigurationError is returned when a frame rate cannot be used for
// conversion.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// NewRate validates fps and returns it as a Rate
func NewRate(fps float64) (Rate, error) {
	switch {
	case math.IsNaN(fps) || math.IsInf(fps, 0):
		return 0, &ConfigurationError{Field: "frame rate", Value: fmt.Sprint(fps), Reason: "must be finite"}
	case fps <= 0:
		return 0, &ConfigurationError{Field: "frame rate", Value: fmt.Sprint(fps), Reason: "must be greater than zero"}
	}
	return Rate(fps), nil
}

// RateFromFramerate converts a fractional framerate such as 30000/1001
// into a Rate.
func RateFromFramerate(f video.Framerate) (Rate, error) {
	if f.Empty() {
		return 0, &ConfigurationError{
			Field:  "framerate",
			Value:  fmt.Sprintf("%d/%d", f.Numerator, f.Denominator),
			Reason: "numerator and denominator are required",
		}
	}
	return NewRate(float64(f.Numerator) / float64(f.Denominator))
}

// FPS returns the rate as a float
func (r Rate) FPS() float64 { return float64(r) }

// Period returns the duration of a single frame in seconds
func (r Rate) Period() float64 { return 1 / float64(r) }

func (r Rate) String() string {
	return fmt.Sprintf("%.3ffps", float64(r))
}
