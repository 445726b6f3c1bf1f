package modelcheck

import "errors"

var (
	ErrBadConfig = errors.New("modelcheck: invalid config")

	ErrLenMismatch     = errors.New("modelcheck: length diverged from model")
	ErrOrderViolation  = errors.New("modelcheck: keys out of order")
	ErrValueMismatch   = errors.New("modelcheck: entries diverged from model")
	ErrAllocationState = errors.New("modelcheck: allocation does not match emptiness")
	ErrInsertResult    = errors.New("modelcheck: insert result wrong")
	ErrOverwrite       = errors.New("modelcheck: insert overwrote an existing value")
	ErrCreateCalls     = errors.New("modelcheck: create called the wrong number of times")
	ErrTakeLeftovers   = errors.New("modelcheck: take left entries behind")
)
