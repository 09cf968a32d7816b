package queries

import "time"

// parseTimestamp handles the timestamp formats the JSONB status log may carry.
func parseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Parse(time.RFC3339, value)
	}
	return ts, nil
}
