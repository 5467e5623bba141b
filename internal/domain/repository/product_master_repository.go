package repository

import (
	"context"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// ProductMasterRepository define la lectura del maestro de abastecimiento.
type ProductMasterRepository interface {
	// GetSupplierCatalog devuelve el maestro indexado por product_id, una fila
	// por producto con su proveedor primario. Productos sin proveedor primario
	// simplemente no aparecen; el evaluador de reorden los marca como huérfanos.
	GetSupplierCatalog(ctx context.Context) (map[string]entity.ProductMaster, error)
}
