package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
	"github.com/jhoicas/Optimizador-api/internal/domain/repository"
)

var _ repository.ProductMasterRepository = (*ProductMasterRepo)(nil)

// ProductMasterRepo lectura del maestro de productos con su proveedor primario.
type ProductMasterRepo struct {
	pool *pgxpool.Pool
}

// NewProductMasterRepository construye el adaptador del maestro.
func NewProductMasterRepository(pool *pgxpool.Pool) *ProductMasterRepo {
	return &ProductMasterRepo{pool: pool}
}

// GetSupplierCatalog devuelve el maestro indexado por producto. El JOIN es
// interno: un producto sin proveedor primario no aparece en el mapa y el
// evaluador de compras lo marca como huérfano de datos maestros.
func (r *ProductMasterRepo) GetSupplierCatalog(ctx context.Context) (map[string]entity.ProductMaster, error) {
	const query = `
	SELECT
	    p.product_id,
	    p.supplier_id,
	    s.supplier_name,
	    p.unit_cost,
	    COALESCE(p.moq,            0) AS moq,
	    COALESCE(p.pack_size,      0) AS pack_size,
	    COALESCE(p.lead_time_days, 0) AS lead_time_days
	FROM products  p
	JOIN suppliers s ON s.supplier_id = p.supplier_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("master.GetSupplierCatalog: %w", err)
	}
	defer rows.Close()

	catalog := make(map[string]entity.ProductMaster)
	for rows.Next() {
		var m entity.ProductMaster
		if err := rows.Scan(
			&m.ProductID,
			&m.SupplierID,
			&m.SupplierName,
			&m.UnitCost,
			&m.MOQ,
			&m.PackSize,
			&m.LeadTimeDays,
		); err != nil {
			return nil, fmt.Errorf("master.GetSupplierCatalog scan: %w", err)
		}
		catalog[m.ProductID] = m
	}
	return catalog, rows.Err()
}
