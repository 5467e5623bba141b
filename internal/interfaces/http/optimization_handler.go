package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Optimizador-api/internal/application/approval"
	"github.com/jhoicas/Optimizador-api/internal/application/dto"
	"github.com/jhoicas/Optimizador-api/internal/application/optimization"
	"github.com/jhoicas/Optimizador-api/internal/domain"
)

// OptimizationHandler maneja las peticiones del pipeline de optimización (protegido).
type OptimizationHandler struct {
	runUC      *optimization.UseCase
	approvalUC *approval.UseCase
	reportUC   *optimization.ReportUseCase
}

// NewOptimizationHandler construye el handler.
func NewOptimizationHandler(
	runUC *optimization.UseCase,
	approvalUC *approval.UseCase,
	reportUC *optimization.ReportUseCase,
) *OptimizationHandler {
	return &OptimizationHandler{runUC: runUC, approvalUC: approvalUC, reportUC: reportUC}
}

// Run ejecuta la corrida completa: pipeline, sumisión de aprobación y
// notificaciones a los interesados.
// POST /api/optimization/run
func (h *OptimizationHandler) Run(c *fiber.Ctx) error {
	result, err := h.runUC.Run(c.Context())
	if err != nil {
		return h.pipelineError(c, err)
	}

	submission, err := h.approvalUC.Submit(c.Context(), result.Allocation)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SUBMISSION", Message: "ya existe una sumisión con este identificador; reintente en unos segundos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	notifications, err := h.approvalUC.Notify(c.Context(), submission)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.JSON(dto.RunOptimizationResponse{
		Result:        result,
		Submission:    submission,
		Notifications: notifications,
	})
}

// Preview ejecuta el pipeline sin persistir ni notificar nada: misma
// computación que Run, solo lectura.
// GET /api/optimization/preview
func (h *OptimizationHandler) Preview(c *fiber.Ctx) error {
	result, err := h.runUC.Run(c.Context())
	if err != nil {
		return h.pipelineError(c, err)
	}
	return c.JSON(result)
}

// Report ejecuta el pipeline y devuelve el reporte de recomendaciones en PDF.
// GET /api/optimization/report
func (h *OptimizationHandler) Report(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.reportUC.GenerateReport(c.Context())
	if err != nil {
		return h.pipelineError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// pipelineError mapea los errores del pipeline a HTTP. Una fuente de datos
// caída es un 502: el problema está aguas arriba, no en este servicio.
func (h *OptimizationHandler) pipelineError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUpstreamFailure) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_FAILURE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
