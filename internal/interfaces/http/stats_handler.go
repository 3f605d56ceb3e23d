package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/despensapp/despensa-api/internal/application/analytics"
	"github.com/despensapp/despensa-api/internal/application/dto"
)

// StatsHandler maneja los endpoints de estadísticas y alertas (protegido).
type StatsHandler struct {
	uc *analytics.StatisticsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *analytics.StatisticsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// GetUsage godoc
// @Summary      Estadísticas de uso
// @Description  Totales, vencidos, por vencer, entradas/salidas, distribución por tipo y ranking de usuarios. Se recalcula en cada petición; no hay caché.
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UsageStatisticsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/usage [get]
func (h *StatsHandler) GetUsage(c *fiber.Ctx) error {
	out, err := h.uc.GetUsage()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetAlerts godoc
// @Summary      Alertas de vencimiento
// @Description  Productos ya vencidos y productos que vencen en 0-7 días, ordenados del más urgente al menos.
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExpiryAlertsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/alerts [get]
func (h *StatsHandler) GetAlerts(c *fiber.Ctx) error {
	out, err := h.uc.GetExpiryAlerts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
