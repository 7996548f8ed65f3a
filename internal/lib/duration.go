package lib

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration wraps time.Duration so JSON configs can say either "10s" or a
// nanosecond count.
type Duration struct {
	time.Duration
}

// DurationFrom avoids the "struct literal uses unkeyed fields" warning when
// declaring a Duration literal.
func DurationFrom(t time.Duration) Duration {
	return Duration{t}
}

func (duration *Duration) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case float64:
		duration.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		duration.Duration = parsed
	default:
		return fmt.Errorf("invalid duration: %#v", raw)
	}

	return nil
}
