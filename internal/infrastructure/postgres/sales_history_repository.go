package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
	"github.com/jhoicas/Optimizador-api/internal/domain/repository"
)

var _ repository.SalesHistoryRepository = (*SalesHistoryRepo)(nil)

// SalesHistoryRepo lectura del historial de ventas para estadísticas de demanda.
type SalesHistoryRepo struct {
	pool *pgxpool.Pool
}

// NewSalesHistoryRepository construye el adaptador de historial de ventas.
func NewSalesHistoryRepository(pool *pgxpool.Pool) *SalesHistoryRepo {
	return &SalesHistoryRepo{pool: pool}
}

// GetDailyDemand agrega las ventas por producto y día calendario desde `since`.
// Solo transacciones de tipo 'sale'; las estadísticas (promedio, desviación,
// mínimo de historial) se calculan en el dominio sobre estas filas.
func (r *SalesHistoryRepo) GetDailyDemand(ctx context.Context, since time.Time) ([]entity.DailyDemand, error) {
	const query = `
	SELECT
	    product_id,
	    DATE(transaction_date) AS day,
	    SUM(quantity)          AS quantity
	FROM sales_transactions
	WHERE transaction_date >= $1
	  AND transaction_type = 'sale'
	GROUP BY product_id, DATE(transaction_date)
	ORDER BY product_id, day`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("sales.GetDailyDemand: %w", err)
	}
	defer rows.Close()

	var demand []entity.DailyDemand
	for rows.Next() {
		var d entity.DailyDemand
		if err := rows.Scan(&d.ProductID, &d.Day, &d.Quantity); err != nil {
			return nil, fmt.Errorf("sales.GetDailyDemand scan: %w", err)
		}
		demand = append(demand, d)
	}
	return demand, rows.Err()
}
