package ingest

import (
	"fmt"
	"math"
)

// ValidationError marks a malformed or out-of-range tick field. The tick is
// skipped; sibling ticks in the same batch are unaffected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validate(t RawTick) error {
	if math.IsNaN(t.Price) || math.IsInf(t.Price, 0) {
		return &ValidationError{Field: "price", Reason: "must be a finite number"}
	}
	if t.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if t.Volume < 0 {
		return &ValidationError{Field: "volume", Reason: "must not be negative"}
	}
	if t.Timestamp <= 0 {
		return &ValidationError{Field: "timestamp", Reason: "must be a positive epoch time"}
	}
	return nil
}
