package dto

import "time"

// RegisterMovementRequest entrada para registrar una entrada o salida.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Type      string `json:"type" validate:"required,oneof=entry exit"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Note      string `json:"note" validate:"max=500"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Note        string    `json:"note,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// MovementListResponse lista de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
