package shelf

import (
	"fmt"

	"laundrytrack/internal/pkg/errs"
)

// Stage represents the pipeline phase a shelf physically serves.
// Staff provision shelves per phase so items can be parked next to the
// equipment that processes them.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	StageUnknown Stage = iota

	// StageWash marks shelves next to the washing machines.
	StageWash

	// StageIron marks shelves next to the ironing stations.
	StageIron

	// StageReady marks pickup shelves for finished orders.
	StageReady
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown: "unknown",
		StageWash:    "wash",
		StageIron:    "iron",
		StageReady:   "ready",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // StageUnknown is intentionally excluded as it's invalid
	return map[Stage]string{
		StageWash:  "wash",
		StageIron:  "iron",
		StageReady: "ready",
	}
}

// StageFromString parses a stage from its wire form ("wash", "iron", "ready").
// Returns a ValueIsInvalidError for unrecognized values.
func StageFromString(s string) (Stage, error) {
	for stage, str := range getValidStageStrings() {
		if str == s {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a valid stage", s))
}

// Validate checks if the Stage value is valid.
// Valid stages are: wash, iron, ready.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// Implements the fmt.Stringer interface and is safe to call on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}
