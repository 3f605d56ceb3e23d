package entity

import "time"

// Product representa un artículo de la despensa con fecha de vencimiento.
// Quantity se mantiene por edición directa; el log de movimientos no la modifica.
type Product struct {
	ID          string
	Name        string
	Type        string // etiqueta de categoría libre (ej: "lácteos")
	Description string
	Quantity    int // siempre >= 0
	ExpiryDate  time.Time
	PhotoURL    string // opcional; subida de fotos deshabilitada, se conserva el campo
	UserID      string // usuario que registró el producto
	UserName    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
