package domain

import (
	"strings"
	"time"

	apperrors "storefront/internal/errors"
)

type Client struct {
	ID        ID
	Name      string
	Email     string
	Document  string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewClient(id string, name, email, document string, address Address) (*Client, error) {
	now := time.Now().UTC()
	c := &Client{
		ID:        NewID(id),
		Name:      name,
		Email:     email,
		Document:  document,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) Validate() error {
	var details []apperrors.ValidationDetail
	if strings.TrimSpace(c.ID.String()) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "id", Message: "id is required"})
	}
	if strings.TrimSpace(c.Name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(c.Document) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "document", Message: "document is required"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid client", details...)
	}
	return nil
}
