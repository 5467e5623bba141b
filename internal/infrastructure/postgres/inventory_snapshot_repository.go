package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
	"github.com/jhoicas/Optimizador-api/internal/domain/repository"
)

var _ repository.InventorySnapshotRepository = (*InventorySnapshotRepo)(nil)

// InventorySnapshotRepo lectura del snapshot consolidado de inventario actual.
type InventorySnapshotRepo struct {
	pool *pgxpool.Pool
}

// NewInventorySnapshotRepository construye el adaptador del snapshot.
func NewInventorySnapshotRepository(pool *pgxpool.Pool) *InventorySnapshotRepo {
	return &InventorySnapshotRepo{pool: pool}
}

// GetCurrentPositions devuelve las posiciones activas actualizadas desde
// `updatedSince`, con el costo del maestro y los datos de la ubicación.
// Incluye posiciones en cero (una tienda sin stock sigue siendo una fila del
// snapshot). El orden por ubicación y producto fija el desempate de fuentes
// de traslado entre corridas.
func (r *InventorySnapshotRepo) GetCurrentPositions(ctx context.Context, updatedSince time.Time) ([]entity.InventoryPosition, error) {
	const query = `
	SELECT
	    i.product_id,
	    i.sku,
	    i.product_name,
	    i.location_id,
	    l.location_name,
	    l.location_type,
	    l.region,
	    i.quantity_on_hand,
	    i.quantity_reserved,
	    i.quantity_available,
	    p.unit_cost,
	    i.last_updated
	FROM inventory_current i
	JOIN products  p ON p.product_id  = i.product_id
	JOIN locations l ON l.location_id = i.location_id
	WHERE i.is_active = true
	  AND i.last_updated >= $1
	ORDER BY i.location_id, i.product_id`

	rows, err := r.pool.Query(ctx, query, updatedSince)
	if err != nil {
		return nil, fmt.Errorf("snapshot.GetCurrentPositions: %w", err)
	}
	defer rows.Close()

	var positions []entity.InventoryPosition
	for rows.Next() {
		var p entity.InventoryPosition
		if err := rows.Scan(
			&p.ProductID,
			&p.SKU,
			&p.ProductName,
			&p.LocationID,
			&p.LocationName,
			&p.LocationType,
			&p.Region,
			&p.QuantityOnHand,
			&p.QuantityReserved,
			&p.QuantityAvailable,
			&p.UnitCost,
			&p.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("snapshot.GetCurrentPositions scan: %w", err)
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}
