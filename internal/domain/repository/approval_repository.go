package repository

import (
	"context"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// ApprovalRepository define la persistencia de la cola de aprobaciones.
type ApprovalRepository interface {
	// InsertRecords inserta los registros de un envío en la cola de
	// aprobaciones. Todos pertenecen al mismo submission_id.
	InsertRecords(ctx context.Context, records []entity.ApprovalRecord) error

	// MarkAutoApproved marca todos los registros del envío como auto-aprobados
	// por el sistema y devuelve cuántas filas cambiaron.
	MarkAutoApproved(ctx context.Context, submissionID string) (int64, error)
}
