package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/despensapp/despensa-api/internal/application/dto"
	"github.com/despensapp/despensa-api/internal/domain"
	"github.com/despensapp/despensa-api/internal/domain/entity"
	"github.com/despensapp/despensa-api/internal/domain/repository"
)

// DefaultMovementLimit límite por defecto del historial de movimientos.
const DefaultMovementLimit = 100

// MovementUseCase registra y consulta entradas/salidas contra productos.
// El log es append-only; no ajusta la cantidad del producto.
type MovementUseCase struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movRepo repository.MovementRepository, productRepo repository.ProductRepository) *MovementUseCase {
	return &MovementUseCase{movRepo: movRepo, productRepo: productRepo, now: time.Now}
}

// Register registra un movimiento a nombre del usuario autenticado.
// Valida tipo y cantidad, verifica que el producto exista y desnormaliza su
// nombre. El timestamp lo asigna el servidor y nunca se modifica.
func (uc *MovementUseCase) Register(userID, userName string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementEntry && in.Type != entity.MovementExit {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movement := &entity.Movement{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Type:        in.Type,
		Quantity:    in.Quantity,
		UserID:      userID,
		UserName:    userName,
		Note:        in.Note,
		Timestamp:   uc.now(),
	}
	if err := uc.movRepo.Create(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// List devuelve los movimientos más recientes primero, con filtro opcional por
// producto y límite (por defecto 100).
func (uc *MovementUseCase) List(productID string, limit int) (*dto.MovementListResponse, error) {
	if limit <= 0 {
		limit = DefaultMovementLimit
	}
	list, err := uc.movRepo.List(productID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items}, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		UserID:      m.UserID,
		UserName:    m.UserName,
		Note:        m.Note,
		Timestamp:   m.Timestamp,
	}
}
