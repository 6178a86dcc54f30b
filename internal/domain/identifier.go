package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ID is an opaque entity identifier.
type ID string

// NewID keeps a caller supplied value and generates a random one when it is blank.
func NewID(value string) ID {
	if strings.TrimSpace(value) == "" {
		return ID(uuid.NewString())
	}
	return ID(value)
}

func (id ID) String() string {
	return string(id)
}
