package order

import (
	"errors"
	"fmt"
)

// BusinessError marks customer-facing rule violations. The customer
// endpoints surface these as HTTP 200 with an error field; everything
// else is an infrastructure fault and becomes a server error.
type BusinessError interface {
	error
	BusinessRule()
}

// ValidationError rejects bad customer input before anything is
// persisted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
func (e *ValidationError) BusinessRule() {}

var (
	ErrEmptyCart       = &ValidationError{Reason: "Cart is empty"}
	ErrInvalidPhone    = &ValidationError{Reason: "Phone number must be exactly 10 digits"}
	ErrNameTooShort    = &ValidationError{Reason: "Name must be at least 2 characters"}
	ErrNameCharset     = &ValidationError{Reason: "Name can only contain letters and spaces"}
	ErrEmptyAddress    = &ValidationError{Reason: "Address cannot be empty"}
	ErrInvalidQuantity = &ValidationError{Reason: "Quantity must be greater than zero"}
)

// InvalidProductError names a cart line whose product id is not in the
// catalog. It aborts the whole operation.
type InvalidProductError struct {
	ProductID int64
}

func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid product_id %d", e.ProductID)
}
func (e *InvalidProductError) BusinessRule() {}

// InvalidTotalError guards against a non-positive cart total. Cannot
// happen with positive quantities and prices, but price positivity is
// not enforced at pricing time.
type InvalidTotalError struct {
	Total int64
}

func (e *InvalidTotalError) Error() string {
	return "Total amount must be greater than zero"
}
func (e *InvalidTotalError) BusinessRule() {}

// IsBusinessError reports whether err is a business-rule failure
// rather than an infrastructure fault.
func IsBusinessError(err error) bool {
	var be BusinessError
	return errors.As(err, &be)
}
