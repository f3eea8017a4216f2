package usecase

import "errors"

var (
	ErrInvalidPurchase   = errors.New("invalid purchase")
	ErrContractViolation = errors.New("contract violation")
)

// InvalidPurchaseError is a business-rule violation the caller can fix and retry.
type InvalidPurchaseError struct {
	Reason string
}

func (e *InvalidPurchaseError) Error() string {
	return "invalid purchase: " + e.Reason
}

func (e *InvalidPurchaseError) Is(target error) bool {
	return target == ErrInvalidPurchase
}

// ContractViolationError means the caller passed a malformed request.
type ContractViolationError struct {
	Reason string
}

func (e *ContractViolationError) Error() string {
	return "contract violation: " + e.Reason
}

func (e *ContractViolationError) Is(target error) bool {
	return target == ErrContractViolation
}

func invalidPurchase(reason string) error {
	return &InvalidPurchaseError{Reason: reason}
}

// NewContractViolation wraps a request construction error so callers outside
// the service report it the same way.
func NewContractViolation(err error) error {
	return &ContractViolationError{Reason: err.Error()}
}
