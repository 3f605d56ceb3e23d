package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/despensapp/despensa-api/internal/domain/entity"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func product(productType string, quantity, expiryOffsetDays int) *entity.Product {
	return &entity.Product{
		ID:         fmt.Sprintf("p-%s-%d", productType, expiryOffsetDays),
		Name:       "producto",
		Type:       productType,
		Quantity:   quantity,
		ExpiryDate: now.AddDate(0, 0, expiryOffsetDays),
	}
}

func movement(movType, userName string) *entity.Movement {
	return &entity.Movement{Type: movType, Quantity: 1, UserName: userName}
}

// Colecciones vacías producen contadores en cero y mapas vacíos, no un error.
func TestSummarize_SnapshotVacio(t *testing.T) {
	u := Summarize(nil, nil, now)

	require.NotNil(t, u)
	assert.Zero(t, u.TotalProducts)
	assert.Zero(t, u.TotalQuantity)
	assert.Zero(t, u.ExpiredProducts)
	assert.Zero(t, u.ExpiringProducts)
	assert.Zero(t, u.TotalEntries)
	assert.Zero(t, u.TotalExits)
	assert.Empty(t, u.ProductsByType)
	assert.Empty(t, u.UserActivity)
	assert.Empty(t, u.TopUserActivity)
}

// Escenario de referencia: 3 productos (uno vencido, uno por vencer, uno normal)
// y 3 movimientos de 2 usuarios.
func TestSummarize_EscenarioCompleto(t *testing.T) {
	products := []*entity.Product{
		product("dairy", 5, -1),
		product("dairy", 3, 3),
		product("produce", 10, 40),
	}
	movements := []*entity.Movement{
		movement(entity.MovementEntry, "A"),
		movement(entity.MovementExit, "A"),
		movement(entity.MovementEntry, "B"),
	}

	u := Summarize(products, movements, now)

	assert.Equal(t, 3, u.TotalProducts)
	assert.Equal(t, 18, u.TotalQuantity)
	assert.Equal(t, 1, u.ExpiredProducts)
	assert.Equal(t, 1, u.ExpiringProducts)
	assert.Equal(t, 2, u.TotalEntries)
	assert.Equal(t, 1, u.TotalExits)
	assert.Equal(t, map[string]int{"dairy": 2, "produce": 1}, u.ProductsByType)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, u.UserActivity)
	require.Len(t, u.TopUserActivity, 2)
	assert.Equal(t, UserCount{Name: "A", Count: 2}, u.TopUserActivity[0])
	assert.Equal(t, UserCount{Name: "B", Count: 1}, u.TopUserActivity[1])
}

// Permutar las entradas no cambia contadores ni mapas.
func TestSummarize_IndependienteDelOrden(t *testing.T) {
	products := []*entity.Product{
		product("dairy", 5, -1),
		product("dairy", 3, 3),
		product("produce", 10, 40),
	}
	movements := []*entity.Movement{
		movement(entity.MovementEntry, "A"),
		movement(entity.MovementExit, "A"),
		movement(entity.MovementEntry, "B"),
	}
	reversedProducts := []*entity.Product{products[2], products[1], products[0]}
	reversedMovements := []*entity.Movement{movements[2], movements[1], movements[0]}

	a := Summarize(products, movements, now)
	b := Summarize(reversedProducts, reversedMovements, now)

	assert.Equal(t, a.TotalProducts, b.TotalProducts)
	assert.Equal(t, a.TotalQuantity, b.TotalQuantity)
	assert.Equal(t, a.ExpiredProducts, b.ExpiredProducts)
	assert.Equal(t, a.ExpiringProducts, b.ExpiringProducts)
	assert.Equal(t, a.TotalEntries, b.TotalEntries)
	assert.Equal(t, a.TotalExits, b.TotalExits)
	assert.Equal(t, a.ProductsByType, b.ProductsByType)
	assert.Equal(t, a.UserActivity, b.UserActivity)
	// El ranking conserva los counts; solo el desempate depende del orden de entrada
	assert.ElementsMatch(t, a.TopUserActivity, b.TopUserActivity)
}

// Idempotencia: dos llamadas con las mismas entradas dan el mismo resultado.
func TestSummarize_Idempotente(t *testing.T) {
	products := []*entity.Product{product("dairy", 5, 3)}
	movements := []*entity.Movement{movement(entity.MovementEntry, "A")}

	assert.Equal(t, Summarize(products, movements, now), Summarize(products, movements, now))
}

// Cantidad 0 es válida: cuenta en TotalProducts y aporta 0 a TotalQuantity.
func TestSummarize_CantidadCero(t *testing.T) {
	u := Summarize([]*entity.Product{product("dairy", 0, 3)}, nil, now)

	assert.Equal(t, 1, u.TotalProducts)
	assert.Equal(t, 0, u.TotalQuantity)
}

// Tipo vacío es una clave válida y distinta.
func TestSummarize_TipoVacioEsClaveValida(t *testing.T) {
	products := []*entity.Product{
		product("", 1, 40),
		product("", 2, 40),
		product("dairy", 1, 40),
	}

	u := Summarize(products, nil, now)

	assert.Equal(t, map[string]int{"": 2, "dairy": 1}, u.ProductsByType)
}

// La comparación de tipos es exacta y sensible a mayúsculas.
func TestSummarize_TiposSensiblesAMayusculas(t *testing.T) {
	products := []*entity.Product{
		product("Dairy", 1, 40),
		product("dairy", 1, 40),
	}

	u := Summarize(products, nil, now)

	assert.Equal(t, map[string]int{"Dairy": 1, "dairy": 1}, u.ProductsByType)
}

// El ranking se trunca a 10 usuarios y los empates conservan el orden de
// primera aparición en el snapshot.
func TestSummarize_RankingTop10ConDesempateEstable(t *testing.T) {
	var movements []*entity.Movement
	// 12 usuarios con 1 movimiento cada uno (todos empatados)
	for i := 0; i < 12; i++ {
		movements = append(movements, movement(entity.MovementEntry, fmt.Sprintf("user-%02d", i)))
	}
	// user-11 suma un segundo movimiento: debe encabezar el ranking
	movements = append(movements, movement(entity.MovementExit, "user-11"))

	u := Summarize(nil, movements, now)

	require.Len(t, u.TopUserActivity, 10)
	assert.Equal(t, UserCount{Name: "user-11", Count: 2}, u.TopUserActivity[0])
	// Los empatados siguen en orden de primera aparición
	for i := 1; i < 10; i++ {
		assert.Equal(t, fmt.Sprintf("user-%02d", i-1), u.TopUserActivity[i].Name)
		assert.Equal(t, 1, u.TopUserActivity[i].Count)
	}
}
