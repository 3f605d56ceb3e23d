// Package expiry clasifica productos según su fecha de vencimiento (servicio de dominio).
// Funciones puras: el "ahora" siempre se recibe como parámetro, nunca se lee el reloj.
package expiry

import "time"

// Tier nivel de urgencia de un producto respecto a su vencimiento.
type Tier string

// Niveles de urgencia, del más al menos crítico.
const (
	TierExpired       Tier = "expired"        // ya vencido
	TierExpiringSoon  Tier = "expiring_soon"  // vence entre hoy y 7 días
	TierExpiringLater Tier = "expiring_later" // vence entre 8 y 30 días
	TierNormal        Tier = "normal"         // vence en 31+ días
)

// Ventanas de clasificación en días.
const (
	soonWindowDays  = 7
	laterWindowDays = 30
)

// Classification resultado de clasificar una fecha de vencimiento.
type Classification struct {
	Tier       Tier
	DaysOffset int // días calendario entre vencimiento y "ahora"; negativo si ya venció
}

// DaysUntil devuelve la diferencia en días calendario entre expiryDate y now.
// Las fechas se leen en la zona horaria de now y se reconstruyen a medianoche
// en UTC antes de restar: en UTC todos los días duran exactamente 24h, así el
// resultado no se desvía en ventanas que cruzan un cambio de hora (DST).
func DaysUntil(expiryDate, now time.Time) int {
	exp := expiryDate.In(now.Location())
	expMidnight := time.Date(exp.Year(), exp.Month(), exp.Day(), 0, 0, 0, 0, time.UTC)
	nowMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(expMidnight.Sub(nowMidnight).Hours() / 24)
}

// Classify asigna el nivel de urgencia evaluando en orden estricto:
// vencido, por vencer (0-7 días), vence pronto (8-30 días), normal.
// Primera coincidencia gana.
func Classify(expiryDate, now time.Time) Classification {
	days := DaysUntil(expiryDate, now)
	switch {
	case days < 0:
		return Classification{Tier: TierExpired, DaysOffset: days}
	case days <= soonWindowDays:
		return Classification{Tier: TierExpiringSoon, DaysOffset: days}
	case days <= laterWindowDays:
		return Classification{Tier: TierExpiringLater, DaysOffset: days}
	default:
		return Classification{Tier: TierNormal, DaysOffset: days}
	}
}
