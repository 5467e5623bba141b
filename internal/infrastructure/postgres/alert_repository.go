package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Optimizador-api/internal/domain"
	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
	"github.com/jhoicas/Optimizador-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo escritura de alertas del dashboard de monitoreo.
type AlertRepo struct {
	pool *pgxpool.Pool
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

// CreateAlert inserta la alerta. El metadata ya viene serializado como JSON.
func (r *AlertRepo) CreateAlert(ctx context.Context, alert entity.DashboardAlert) error {
	const query = `
	INSERT INTO dashboard_alerts (
	    alert_id, alert_type, severity, message, created_at, status, metadata
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		alert.AlertID, alert.AlertType, alert.Severity, alert.Message,
		alert.CreatedAt, alert.Status, alert.Metadata,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("alerts.CreateAlert: %w", err)
	}
	return nil
}
