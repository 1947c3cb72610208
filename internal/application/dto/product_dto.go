package dto

import "time"

// CreateProductRequest entrada para registrar un producto.
type CreateProductRequest struct {
	Name        string `json:"nome_produto"`
	UnitMeasure string `json:"unidade_medida"`
	SKU         string `json:"sku,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome_produto"`
	UnitMeasure string    `json:"unidade_medida"`
	SKU         *string   `json:"sku"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductListResponse listado completo de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
