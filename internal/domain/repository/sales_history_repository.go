package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// SalesHistoryRepository define las consultas de lectura sobre el histórico de
// ventas. Las implementaciones son read-only.
type SalesHistoryRepository interface {
	// GetDailyDemand devuelve la demanda agregada por producto y día desde la
	// fecha dada, ordenada por producto y día. La ventana la decide el caller
	// (hoy menos los días de historia configurados); el filtro de historia
	// mínima vive en el dominio, no en la consulta.
	GetDailyDemand(ctx context.Context, since time.Time) ([]entity.DailyDemand, error)
}
