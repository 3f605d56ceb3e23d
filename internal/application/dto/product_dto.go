package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=200"`
	Type        string    `json:"type" validate:"max=100"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity" validate:"min=0"`
	ExpiryDate  time.Time `json:"expiry_date" validate:"required"`
	PhotoURL    string    `json:"photo_url"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// ID y CreatedAt son inmutables; no aparecen aquí.
type UpdateProductRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Type        *string    `json:"type" validate:"omitempty,max=100"`
	Description *string    `json:"description"`
	Quantity    *int       `json:"quantity" validate:"omitempty,min=0"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	PhotoURL    *string    `json:"photo_url"`
}

// ProductResponse salida de un producto, con su clasificación de vencimiento.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	ExpiryDate  time.Time `json:"expiry_date"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	ExpiryTier  string    `json:"expiry_tier"`  // expired | expiring_soon | expiring_later | normal
	DaysOffset  int       `json:"days_offset"`  // días calendario hasta el vencimiento (negativo si venció)
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
