package dto

import "github.com/jhoicas/Optimizador-api/internal/domain/entity"

// RunOptimizationResponse respuesta de una corrida completa: el resultado del
// pipeline más la sumisión de aprobación y las notificaciones que generó.
type RunOptimizationResponse struct {
	Result        *entity.PipelineResult     `json:"result"`
	Submission    *entity.ApprovalSubmission `json:"submission"`
	Notifications *entity.NotificationResult `json:"notifications"`
}
