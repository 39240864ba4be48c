package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/marketing-crm-api/internal/application/auth"
	"github.com/jhoicas/marketing-crm-api/internal/application/orders"
	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	OrderUC   *orders.OrderUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Los paths son parte del contrato con
// el frontend; cambiarlos lo rompe.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.AuthUC)
	orderHandler := NewOrderHandler(deps.OrderUC)

	// Auth (público)
	app.Post("/register", authHandler.Register)
	app.Post("/token", authHandler.Token)
	app.Post("/refresh-token", authHandler.RefreshToken)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil
	protected.Get("/users/me", userHandler.Me)
	protected.Put("/users/me", userHandler.UpdateMe)

	// Pedidos del usuario
	protected.Post("/request-service", orderHandler.Submit)
	protected.Get("/my-requests", orderHandler.MyRequests)

	// Administración de pedidos (el use case vuelve a verificar el rol)
	admin := protected.Group("/", RequireRole(entity.RoleAdmin))
	admin.Get("/orders", orderHandler.ListAll)
	admin.Put("/orders/:order_id/update-status", orderHandler.UpdateStatus)
	admin.Get("/orders/:order_id/invoice", orderHandler.Invoice)
	admin.Get("/admin/download-payment/:order_id", orderHandler.DownloadProof)
}
