package repository

import (
	"context"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// AlertRepository define la persistencia de alertas del dashboard operativo.
type AlertRepository interface {
	// CreateAlert inserta una alerta. Un fallo aquí no debe tumbar el flujo
	// que la origina; el caller decide si lo degrada a warning.
	CreateAlert(ctx context.Context, alert entity.DashboardAlert) error
}
