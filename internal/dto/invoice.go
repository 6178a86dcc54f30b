package dto

import "time"

type InvoiceItemDTO struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type GenerateInvoiceInput struct {
	Name     string
	Document string
	Address  AddressDTO
	Items    []InvoiceItemDTO
}

type GenerateInvoiceOutput struct {
	ID       string
	Name     string
	Document string
	Address  AddressDTO
	Items    []InvoiceItemDTO
	Total    float64
}

type InvoiceResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Document  string           `json:"document"`
	Address   AddressDTO       `json:"address"`
	Items     []InvoiceItemDTO `json:"items"`
	Total     float64          `json:"total"`
	CreatedAt time.Time        `json:"createdAt"`
}
