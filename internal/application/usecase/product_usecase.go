package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/despensapp/despensa-api/internal/application/dto"
	"github.com/despensapp/despensa-api/internal/domain"
	"github.com/despensapp/despensa-api/internal/domain/entity"
	"github.com/despensapp/despensa-api/internal/domain/expiry"
	"github.com/despensapp/despensa-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// La cantidad se edita directamente; el log de movimientos no la reconcilia.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create crea un nuevo producto a nombre del usuario autenticado.
// La fecha de vencimiento puede estar en el pasado (se clasifica como vencido).
func (uc *ProductUseCase) Create(userID, userName string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Quantity:    in.Quantity,
		ExpiryDate:  in.ExpiryDate,
		PhotoURL:    in.PhotoURL,
		UserID:      userID,
		UserName:    userName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toProductResponse(product), nil
}

// Update actualiza un producto. ID y CreatedAt son inmutables.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Type != nil {
		product.Type = *in.Type
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = *in.ExpiryDate
	}
	if in.PhotoURL != nil {
		product.PhotoURL = *in.PhotoURL
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toProductResponse(product), nil
}

// List lista productos con filtro opcional por tipo y paginación (created_at desc).
func (uc *ProductUseCase) List(productType string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(productType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *uc.toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID. Los movimientos históricos se conservan
// (llevan el nombre desnormalizado).
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	cls := expiry.Classify(p.ExpiryDate, uc.now())
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Description: p.Description,
		Quantity:    p.Quantity,
		ExpiryDate:  p.ExpiryDate,
		PhotoURL:    p.PhotoURL,
		UserID:      p.UserID,
		UserName:    p.UserName,
		ExpiryTier:  string(cls.Tier),
		DaysOffset:  cls.DaysOffset,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
