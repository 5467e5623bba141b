package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// InventorySnapshotRepository define la lectura del estado actual de inventario.
// Las implementaciones son read-only.
type InventorySnapshotRepository interface {
	// GetCurrentPositions devuelve una fila por par producto-ubicación de los
	// productos activos cuya última actualización es posterior a updatedSince,
	// ordenadas por ubicación y producto para que corridas idénticas recorran
	// las fuentes de transferencia en el mismo orden.
	GetCurrentPositions(ctx context.Context, updatedSince time.Time) ([]entity.InventoryPosition, error)
}
