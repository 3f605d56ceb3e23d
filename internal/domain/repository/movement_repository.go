package repository

import "github.com/despensapp/despensa-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement.
// El log es append-only: solo inserción y lectura, sin Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// List devuelve los movimientos más recientes primero (timestamp desc).
	// productID vacío = todos los productos. limit acota el snapshot.
	List(productID string, limit int) ([]*entity.Movement, error)
}
