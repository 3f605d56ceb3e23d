package entity

import "time"

// Tipos de movimiento.
const (
	MovementEntry = "entry" // entrada
	MovementExit  = "exit"  // salida
)

// Movement representa una entrada o salida registrada contra un producto.
// Es un log append-only: nunca se actualiza ni se elimina. El nombre del
// producto se desnormaliza al crear para que el historial sobreviva al borrado
// del producto.
type Movement struct {
	ID          string
	ProductID   string
	ProductName string
	Type        string // entry | exit
	Quantity    int    // siempre >= 1
	UserID      string
	UserName    string
	Note        string // opcional
	Timestamp   time.Time
}
