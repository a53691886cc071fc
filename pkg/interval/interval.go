package interval

import (
	"fmt"
	"time"

	"github.com/muhammadchandra19/tick-data-service/pkg/errors"
)

// Frequency is the width of an aggregation bucket in whole seconds.
type Frequency int64

// Common frequencies.
const (
	Second Frequency = 1
	Minute Frequency = 60
	Hour   Frequency = 3600
	Day    Frequency = 86400
)

// Validate rejects non-positive frequencies. Called once per engine
// invocation, before any bucketing starts.
func (f Frequency) Validate() error {
	if f <= 0 {
		return errors.NewErrorDetails(
			fmt.Sprintf("frequency must be a positive number of seconds, got %d", f),
			errors.InvalidFrequencyError,
			"frequency",
		)
	}
	return nil
}

// Duration returns the bucket width as a time.Duration.
func (f Frequency) Duration() time.Duration {
	return time.Duration(f) * time.Second
}

func (f Frequency) String() string {
	return fmt.Sprintf("%ds", int64(f))
}
