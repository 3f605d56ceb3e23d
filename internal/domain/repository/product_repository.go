package repository

import "github.com/despensapp/despensa-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los listados devuelven snapshots ordenados por created_at descendente.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(productType string, limit, offset int) ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	Delete(id string) error
}
