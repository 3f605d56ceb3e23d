// Package stats calcula las estadísticas de uso a partir de un snapshot de
// productos y movimientos (servicio de dominio, sin estado ni I/O).
package stats

import (
	"sort"
	"time"

	"github.com/despensapp/despensa-api/internal/domain/entity"
	"github.com/despensapp/despensa-api/internal/domain/expiry"
)

const topUsers = 10 // número de usuarios en el ranking de actividad

// UserCount actividad de un usuario (movimientos atribuidos a su nombre visible).
type UserCount struct {
	Name  string
	Count int
}

// Usage estadísticas agregadas sobre un snapshot completo.
type Usage struct {
	TotalProducts   int
	TotalQuantity   int
	ExpiredProducts int
	// ExpiringProducts cuenta solo la ventana de 0-7 días (TierExpiringSoon).
	// Los productos en 8-30 días (TierExpiringLater) se muestran en tarjetas
	// pero no entran en este contador; la asimetría viene del producto original
	// y se conserva a propósito.
	ExpiringProducts int
	TotalEntries     int
	TotalExits       int
	ProductsByType   map[string]int // clave = etiqueta exacta (sensible a mayúsculas; "" es válida)
	UserActivity     map[string]int
	// TopUserActivity: UserActivity ordenado por Count descendente, truncado a 10.
	// Empates se resuelven por orden de primera aparición en el snapshot de
	// movimientos (orden estable, documentado).
	TopUserActivity []UserCount
}

// Summarize computa las estadísticas en una sola pasada por cada colección.
// Función pura: mismas entradas producen siempre la misma salida, y colecciones
// vacías producen contadores en cero y mapas vacíos (no es un error).
func Summarize(products []*entity.Product, movements []*entity.Movement, now time.Time) *Usage {
	u := &Usage{
		ProductsByType: make(map[string]int),
		UserActivity:   make(map[string]int),
	}

	for _, p := range products {
		u.TotalProducts++
		u.TotalQuantity += p.Quantity
		u.ProductsByType[p.Type]++
		switch expiry.Classify(p.ExpiryDate, now).Tier {
		case expiry.TierExpired:
			u.ExpiredProducts++
		case expiry.TierExpiringSoon:
			u.ExpiringProducts++
		}
	}

	var seen []string // nombres en orden de primera aparición, para desempate estable
	for _, m := range movements {
		switch m.Type {
		case entity.MovementEntry:
			u.TotalEntries++
		case entity.MovementExit:
			u.TotalExits++
		}
		if _, ok := u.UserActivity[m.UserName]; !ok {
			seen = append(seen, m.UserName)
		}
		u.UserActivity[m.UserName]++
	}

	top := make([]UserCount, 0, len(seen))
	for _, name := range seen {
		top = append(top, UserCount{Name: name, Count: u.UserActivity[name]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topUsers {
		top = top[:topUsers]
	}
	u.TopUserActivity = top

	return u
}
