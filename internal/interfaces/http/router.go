package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/despensapp/despensa-api/internal/application/analytics"
	"github.com/despensapp/despensa-api/internal/application/auth"
	"github.com/despensapp/despensa-api/internal/application/usecase"
	"github.com/despensapp/despensa-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	MovementUC *usecase.MovementUseCase
	UserUC     *usecase.UserUseCase
	StatsUC    *analytics.StatisticsUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movements (protegido, append-only)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)

	// Stats y alertas (protegido)
	statsGroup := protected.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC)
	statsGroup.Get("/usage", statsHandler.GetUsage)
	statsGroup.Get("/alerts", statsHandler.GetAlerts)

	// Users (protegido, solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
}
