package domain

import (
	"strings"

	apperrors "storefront/internal/errors"
)

type Address struct {
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	ZipCode    string
}

func NewAddress(street, number, complement, city, state, zipCode string) (Address, error) {
	a := Address{
		Street:     street,
		Number:     number,
		Complement: complement,
		City:       city,
		State:      state,
		ZipCode:    zipCode,
	}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

// Validate requires every part except the complement.
func (a Address) Validate() error {
	var details []apperrors.ValidationDetail
	required := []struct {
		field string
		value string
	}{
		{"address.street", a.Street},
		{"address.number", a.Number},
		{"address.city", a.City},
		{"address.state", a.State},
		{"address.zipCode", a.ZipCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   r.field,
				Message: r.field + " is required",
			})
		}
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid address", details...)
	}
	return nil
}
