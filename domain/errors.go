package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTerm         = errors.New("invalid term")
	ErrInvalidAllocation   = errors.New("invalid allocation")
	ErrUnknownScheme       = errors.New("unknown repayment scheme")
	ErrUnknownRevenueModel = errors.New("unknown revenue model")
)

// TrancheError ties a validation failure to the tranche that caused it.
type TrancheError struct {
	Index int
	Err   error
}

func (e *TrancheError) Error() string {
	return fmt.Sprintf("tranche %d: %v", e.Index+1, e.Err)
}

func (e *TrancheError) Unwrap() error {
	return e.Err
}
