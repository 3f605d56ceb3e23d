package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/despensapp/despensa-api/internal/domain/entity"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	items []*entity.Product
}

func (r *stubProductRepo) Create(*entity.Product) error            { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error            { return nil }
func (r *stubProductRepo) Delete(string) error                     { return nil }
func (r *stubProductRepo) List(string, int, int) ([]*entity.Product, error) {
	return r.items, nil
}
func (r *stubProductRepo) ListAll() ([]*entity.Product, error) { return r.items, nil }

type stubMovementRepo struct {
	items     []*entity.Movement
	lastLimit int
}

func (r *stubMovementRepo) Create(*entity.Movement) error { return nil }
func (r *stubMovementRepo) List(_ string, limit int) ([]*entity.Movement, error) {
	r.lastLimit = limit
	return r.items, nil
}

func newTestUC(products []*entity.Product, movements []*entity.Movement) (*StatisticsUseCase, *stubMovementRepo) {
	movRepo := &stubMovementRepo{items: movements}
	uc := NewStatisticsUseCase(&stubProductRepo{items: products}, movRepo)
	uc.now = func() time.Time { return testNow }
	return uc, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// GetUsage delega en el motor puro y respeta la ventana de 100 movimientos.
func TestGetUsage_ArmaElSnapshotYDelega(t *testing.T) {
	products := []*entity.Product{
		{ID: "p1", Name: "Leche", Type: "lácteos", Quantity: 5, ExpiryDate: testNow.AddDate(0, 0, -1)},
		{ID: "p2", Name: "Yogur", Type: "lácteos", Quantity: 3, ExpiryDate: testNow.AddDate(0, 0, 3)},
	}
	movements := []*entity.Movement{
		{Type: entity.MovementEntry, Quantity: 2, UserName: "Ana"},
		{Type: entity.MovementExit, Quantity: 1, UserName: "Ana"},
	}
	uc, movRepo := newTestUC(products, movements)

	out, err := uc.GetUsage()

	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalProducts)
	assert.Equal(t, 8, out.TotalQuantity)
	assert.Equal(t, 1, out.ExpiredProducts)
	assert.Equal(t, 1, out.ExpiringProducts)
	assert.Equal(t, 1, out.TotalEntries)
	assert.Equal(t, 1, out.TotalExits)
	assert.Equal(t, map[string]int{"lácteos": 2}, out.ProductsByType)
	require.Len(t, out.TopUserActivity, 1)
	assert.Equal(t, "Ana", out.TopUserActivity[0].Name)
	assert.Equal(t, 2, out.TopUserActivity[0].Count)
	assert.Equal(t, movementWindow, movRepo.lastLimit,
		"las estadísticas consideran solo los movimientos más recientes")
}

// Snapshot vacío → contadores en cero, sin error.
func TestGetUsage_SnapshotVacio(t *testing.T) {
	uc, _ := newTestUC(nil, nil)

	out, err := uc.GetUsage()

	require.NoError(t, err)
	assert.Zero(t, out.TotalProducts)
	assert.Empty(t, out.ProductsByType)
	assert.Empty(t, out.UserActivity)
}

// Las alertas separan vencidos de por-vencer y ordenan por urgencia.
func TestGetExpiryAlerts_OrdenaPorUrgencia(t *testing.T) {
	products := []*entity.Product{
		{ID: "p1", Name: "Queso", ExpiryDate: testNow.AddDate(0, 0, 5)},
		{ID: "p2", Name: "Leche", ExpiryDate: testNow.AddDate(0, 0, -3)},
		{ID: "p3", Name: "Yogur", ExpiryDate: testNow.AddDate(0, 0, 1)},
		{ID: "p4", Name: "Pan", ExpiryDate: testNow.AddDate(0, 0, -1)},
		{ID: "p5", Name: "Arroz", ExpiryDate: testNow.AddDate(0, 0, 60)}, // normal: fuera de las alertas
	}
	uc, _ := newTestUC(products, nil)

	out, err := uc.GetExpiryAlerts()

	require.NoError(t, err)
	require.Len(t, out.Expired, 2)
	assert.Equal(t, "Leche", out.Expired[0].ProductName, "el vencido hace más días va primero")
	assert.Equal(t, 3, out.Expired[0].DaysElapsed)
	assert.Equal(t, "Pan", out.Expired[1].ProductName)
	assert.Equal(t, 1, out.Expired[1].DaysElapsed)

	require.Len(t, out.Expiring, 2)
	assert.Equal(t, "Yogur", out.Expiring[0].ProductName, "el que vence antes va primero")
	assert.Equal(t, 1, out.Expiring[0].DaysLeft)
	assert.Equal(t, "Queso", out.Expiring[1].ProductName)
	assert.Equal(t, 5, out.Expiring[1].DaysLeft)
}

// Sin productos en ventana de alerta → listas vacías (no nil), sin error.
func TestGetExpiryAlerts_SinAlertas(t *testing.T) {
	products := []*entity.Product{
		{ID: "p1", Name: "Arroz", ExpiryDate: testNow.AddDate(0, 0, 90)},
	}
	uc, _ := newTestUC(products, nil)

	out, err := uc.GetExpiryAlerts()

	require.NoError(t, err)
	assert.NotNil(t, out.Expired)
	assert.NotNil(t, out.Expiring)
	assert.Empty(t, out.Expired)
	assert.Empty(t, out.Expiring)
}
