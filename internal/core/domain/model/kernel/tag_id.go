package kernel

import (
	"strings"

	"laundrytrack/internal/pkg/errs"
)

// ErrTagIDIsNotConstructed indicates that a TagID was not created through NewTagID.
// This error is returned when validating a zero-value TagID.
var ErrTagIDIsNotConstructed = errs.NewValueIsRequiredError("TagID must be created via NewTagID")

// TagID is a value object identifying a single physical NFC tag.
// Tags come from a finite, operator-provisioned universe and are bound to at most
// one non-completed order at a time. TagID carries no pool state itself; it is
// the identifier the TagPool hands out and reclaims.
//
// The zero value of TagID is invalid and must be constructed via NewTagID.
// TagID is immutable and safe for concurrent use.
//
// Example usage:
//
//	tag, err := kernel.NewTagID("TAG-017")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tag.String()) // "TAG-017"
type TagID struct {
	value string
}

// NewTagID creates a TagID from its string form.
// Leading and trailing whitespace is trimmed; the result must be non-empty.
//
// Returns:
//   - TagID: the constructed identifier
//   - error: a ValueIsRequiredError when the trimmed value is empty
func NewTagID(value string) (TagID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TagID{}, errs.NewValueIsRequiredError("tag id")
	}
	return TagID{value: value}, nil
}

// String returns the string form of the tag identifier.
func (t TagID) String() string {
	return t.value
}

// IsEqual compares two tag identifiers for equality.
func (t TagID) IsEqual(other TagID) bool {
	return t.value == other.value
}

// Validate checks that the TagID was constructed via NewTagID.
// Returns ErrTagIDIsNotConstructed for a zero value.
func (t TagID) Validate() error {
	if t.value == "" {
		return ErrTagIDIsNotConstructed
	}
	return nil
}
