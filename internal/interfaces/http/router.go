package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Optimizador-api/internal/application/approval"
	"github.com/jhoicas/Optimizador-api/internal/application/optimization"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RunUC      *optimization.UseCase
	ApprovalUC *approval.UseCase
	ReportUC   *optimization.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todas las rutas de optimización
// requieren Bearer Token; correr el pipeline además exige rol de operación
// (admin o analista), mientras que preview y reporte son de solo lectura y
// los puede usar también un supervisor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	optimizationGroup := api.Group("/optimization", AuthMiddleware(deps.JWTSecret))
	handler := NewOptimizationHandler(deps.RunUC, deps.ApprovalUC, deps.ReportUC)

	optimizationGroup.Post("/run", RequireRole(RoleAdmin, RoleAnalista), handler.Run)
	optimizationGroup.Get("/preview", RequireRole(RoleAdmin, RoleAnalista, RoleSupervisor), handler.Preview)
	optimizationGroup.Get("/report", RequireRole(RoleAdmin, RoleAnalista, RoleSupervisor), handler.Report)
}
