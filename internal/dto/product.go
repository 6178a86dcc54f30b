package dto

type AddProductInput struct {
	ID            string
	Name          string
	Description   string
	PurchasePrice float64
	Stock         int
}

type CheckStockOutput struct {
	ProductID string
	Stock     int
}

type AddProductRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PurchasePrice *float64 `json:"purchasePrice"`
	SalesPrice    *float64 `json:"salesPrice"`
	Stock         *int     `json:"stock"`
}

type AddProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}

type CatalogProductDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SalesPrice  float64 `json:"salesPrice"`
}

type CatalogListResponse struct {
	Products []CatalogProductDTO `json:"products"`
}
