package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/despensapp/despensa-api/internal/domain/entity"
	"github.com/despensapp/despensa-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository (usable con pool o tx).
// Solo INSERT y SELECT: el log de movimientos es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, product_id, product_name, type, quantity, user_id, user_name, note, timestamp`

// Create persiste un movimiento. El timestamp ya viene asignado por la aplicación.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.ProductName, movement.Type,
		movement.Quantity, movement.UserID, movement.UserName, movement.Note,
		movement.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve los movimientos más recientes primero. productID vacío = todos.
func (r *MovementRepo) List(productID string, limit int) ([]*entity.Movement, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if productID != "" {
		query := `SELECT ` + movementColumns + ` FROM movements WHERE product_id = $1 ORDER BY timestamp DESC LIMIT $2`
		rows, err = r.q.Query(context.Background(), query, productID, limit)
	} else {
		query := `SELECT ` + movementColumns + ` FROM movements ORDER BY timestamp DESC LIMIT $1`
		rows, err = r.q.Query(context.Background(), query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity,
			&m.UserID, &m.UserName, &m.Note, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
