package order

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CustomerInfo is validated, normalized customer input.
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
	Note    *string
}

// Draft is an unvalidated order as submitted by the client. Both the
// placement and the payment-intent paths validate through it.
type Draft struct {
	CustomerName string
	Phone        string
	Address      string
	Note         *string
	Cart         []CartItem
}

// Validate checks the cart and customer fields and returns normalized
// customer info. It runs before any persistence; a failure here leaves
// the store untouched.
func (d Draft) Validate() (CustomerInfo, error) {
	if len(d.Cart) == 0 {
		return CustomerInfo{}, ErrEmptyCart
	}
	for _, item := range d.Cart {
		if item.Quantity <= 0 {
			return CustomerInfo{}, ErrInvalidQuantity
		}
	}

	name := strings.TrimSpace(d.CustomerName)
	if utf8.RuneCountInString(name) < 2 {
		return CustomerInfo{}, ErrNameTooShort
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return CustomerInfo{}, ErrNameCharset
		}
	}

	phone := strings.TrimSpace(d.Phone)
	if !validPhone(phone) {
		return CustomerInfo{}, ErrInvalidPhone
	}

	address := strings.TrimSpace(d.Address)
	if address == "" {
		return CustomerInfo{}, ErrEmptyAddress
	}

	return CustomerInfo{
		Name:    name,
		Phone:   phone,
		Address: address,
		Note:    d.Note,
	}, nil
}

// validPhone requires exactly 10 decimal digits.
func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
