package optimization

import (
	"context"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// ReportGenerator renderiza el resultado de una corrida como reporte PDF.
type ReportGenerator interface {
	GenerateRecommendationsPDF(ctx context.Context, result *entity.PipelineResult) ([]byte, error)
}
