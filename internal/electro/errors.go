package electro

import (
	"errors"
	"fmt"
)

// Failure conditions the pipeline reports to callers.
var (
	// ErrDomain indicates a physically invalid input (zero denominator,
	// sub-absolute-zero temperature). All DomainError values match it.
	ErrDomain = errors.New("electro: input outside physical domain")

	// ErrEmptyInput indicates a synthesis request with no analytes.
	ErrEmptyInput = errors.New("electro: no analytes to synthesize")
)

// DomainError names the violated invariant and the offending value.
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("electro: %s %g %s", e.Quantity, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}
