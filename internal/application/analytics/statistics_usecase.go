// Package analytics contiene los casos de uso de estadísticas de uso y
// alertas de vencimiento.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/despensapp/despensa-api/internal/application/dto"
	"github.com/despensapp/despensa-api/internal/domain/entity"
	"github.com/despensapp/despensa-api/internal/domain/expiry"
	"github.com/despensapp/despensa-api/internal/domain/repository"
	"github.com/despensapp/despensa-api/internal/domain/stats"
)

// movementWindow movimientos considerados en las estadísticas (los más recientes).
const movementWindow = 100

// StatisticsUseCase arma el snapshot de productos y movimientos y delega el
// cálculo en el motor puro (stats.Summarize / expiry.Classify).
//
// Los repositorios son la única fuente de datos; el caso de uso no mantiene
// estado entre llamadas: cada invocación recalcula sobre el snapshot vigente.
type StatisticsUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	now         func() time.Time
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *StatisticsUseCase {
	return &StatisticsUseCase{productRepo: productRepo, movRepo: movRepo, now: time.Now}
}

// GetUsage construye las estadísticas de uso.
//
// Dos llamadas en paralelo:
//  1. ListAll()          → snapshot completo de productos
//  2. List("", 100)      → los 100 movimientos más recientes
func (uc *StatisticsUseCase) GetUsage() (*dto.UsageStatisticsResponse, error) {
	type productsResult struct {
		items []*entity.Product
		err   error
	}
	type movementsResult struct {
		items []*entity.Movement
		err   error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		items, err := uc.productRepo.ListAll()
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := uc.movRepo.List("", movementWindow)
		movementsCh <- movementsResult{items, err}
	}()

	products := <-productsCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("estadísticas: snapshot de productos: %w", products.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("estadísticas: snapshot de movimientos: %w", movements.err)
	}

	usage := stats.Summarize(products.items, movements.items, uc.now())

	top := make([]dto.UserActivityEntry, 0, len(usage.TopUserActivity))
	for _, u := range usage.TopUserActivity {
		top = append(top, dto.UserActivityEntry{Name: u.Name, Count: u.Count})
	}
	return &dto.UsageStatisticsResponse{
		TotalProducts:    usage.TotalProducts,
		TotalQuantity:    usage.TotalQuantity,
		ExpiredProducts:  usage.ExpiredProducts,
		ExpiringProducts: usage.ExpiringProducts,
		TotalEntries:     usage.TotalEntries,
		TotalExits:       usage.TotalExits,
		ProductsByType:   usage.ProductsByType,
		UserActivity:     usage.UserActivity,
		TopUserActivity:  top,
	}, nil
}

// GetExpiryAlerts arma las listas de alertas: productos vencidos y productos
// que vencen en la ventana de 0-7 días, ambos ordenados del más urgente al menos.
func (uc *StatisticsUseCase) GetExpiryAlerts() (*dto.ExpiryAlertsResponse, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("alertas: snapshot de productos: %w", err)
	}

	now := uc.now()
	out := &dto.ExpiryAlertsResponse{
		Expired:  []dto.ExpiryAlertItem{},
		Expiring: []dto.ExpiryAlertItem{},
	}
	for _, p := range products {
		cls := expiry.Classify(p.ExpiryDate, now)
		switch cls.Tier {
		case expiry.TierExpired:
			out.Expired = append(out.Expired, dto.ExpiryAlertItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				DaysElapsed: -cls.DaysOffset,
			})
		case expiry.TierExpiringSoon:
			out.Expiring = append(out.Expiring, dto.ExpiryAlertItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				DaysLeft:    cls.DaysOffset,
			})
		}
	}
	// Más urgentes primero: vencidos con más días transcurridos, por vencer con menos días restantes
	sort.SliceStable(out.Expired, func(i, j int) bool { return out.Expired[i].DaysElapsed > out.Expired[j].DaysElapsed })
	sort.SliceStable(out.Expiring, func(i, j int) bool { return out.Expiring[i].DaysLeft < out.Expiring[j].DaysLeft })

	return out, nil
}
