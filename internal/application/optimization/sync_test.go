package optimization_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Optimizador-api/internal/application/optimization"
	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

var syncNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func TestBuildSnapshot_Totales(t *testing.T) {
	snap := optimization.BuildSnapshot(syncPositions(), syncNow)

	assert.Equal(t, syncNow, snap.SnapshotTimestamp)
	assert.Equal(t, 6, snap.TotalSKUs, "cuenta filas producto-ubicación, no productos distintos")
	assert.Equal(t, 4, snap.TotalLocations)
	assert.Equal(t, 230, snap.Summary.TotalUnits)
	assert.True(t, snap.Summary.TotalValue.Equal(decimal.NewFromInt(1880)),
		"valor = Σ on_hand × costo unitario")
	assert.Equal(t, 3, snap.Summary.Warehouses, "filas de bodega, no bodegas distintas")
	assert.Equal(t, 3, snap.Summary.Stores)
	assert.Len(t, snap.Positions, 6)
}

func TestBuildSnapshot_Vacio(t *testing.T) {
	snap := optimization.BuildSnapshot(nil, syncNow)

	assert.Equal(t, 0, snap.TotalSKUs)
	assert.Equal(t, 0, snap.TotalLocations)
	assert.True(t, snap.Summary.TotalValue.IsZero())
}

func TestSyncWarehouses_AgregadosPorProducto(t *testing.T) {
	result := optimization.SyncWarehouses(syncPositions(), syncNow)

	assert.Equal(t, 2, result.WarehouseCount, "bodegas distintas, no filas")
	assert.Equal(t, 2, result.TotalProducts)
	require.Len(t, result.Summary, 2)

	p1 := result.Summary[0]
	assert.Equal(t, "PROD-001", p1.ProductID, "resumen ordenado por producto")
	assert.Equal(t, 150, p1.TotalOnHand)
	assert.Equal(t, 130, p1.TotalAvailable)
	assert.Equal(t, 20, p1.TotalReserved)
	assert.Equal(t, 2, p1.WarehouseCount)
	assert.InDelta(t, 13.0, p1.DaysOfSupply, 1e-9, "130 disponibles / reserva promedio 10")

	p2 := result.Summary[1]
	assert.Equal(t, "PROD-002", p2.ProductID)
	assert.Equal(t, 1, p2.WarehouseCount)
	assert.InDelta(t, 1.0, p2.DaysOfSupply, 1e-9)

	assert.Equal(t, 180, result.Metrics.TotalCapacityUtilized)
	// Rotación por fila: 80/20=4, 50/1=50 (reserva 0 se trata como 1), 15/15=1.
	assert.InDelta(t, 55.0/3.0, result.Metrics.AvgTurnoverRatio, 1e-9)
}

func TestSyncWarehouses_SinBodegas(t *testing.T) {
	soloTiendas := []entity.InventoryPosition{
		syncPosition("PROD-001", "store_001", entity.LocationTypeStore, 10, 0, 10, 5),
	}

	result := optimization.SyncWarehouses(soloTiendas, syncNow)

	assert.Equal(t, 0, result.WarehouseCount)
	assert.Empty(t, result.Summary)
	assert.Zero(t, result.Metrics.AvgTurnoverRatio, "sin filas no hay promedio que calcular")
}

func TestSyncStores_RiesgosYSobrestock(t *testing.T) {
	result := optimization.SyncStores(syncPositions(), syncNow)

	assert.Equal(t, 2, result.StoreCount)
	assert.Equal(t, 2, result.TotalProducts)
	require.Len(t, result.Summary, 2)

	p1 := result.Summary[0]
	assert.Equal(t, "PROD-001", p1.ProductID)
	assert.Equal(t, 1, p1.StoresAtRisk, "disponible 5 <= reservado 5")
	assert.Equal(t, 0, p1.StoresOverstocked)
	assert.Equal(t, 1, p1.StoreCount)

	p2 := result.Summary[1]
	assert.Equal(t, "PROD-002", p2.ProductID)
	assert.Equal(t, 1, p2.StoresAtRisk, "una tienda en 0/0 también es riesgo de quiebre")
	assert.Equal(t, 1, p2.StoresOverstocked, "38 disponibles > 3 × 2 reservados")
	assert.Equal(t, 2, p2.StoreCount)

	assert.Equal(t, 2, result.Alerts.StockoutRiskCount)
	assert.Equal(t, 1, result.Alerts.OverstockCount)
}

func TestTotalAvailableByProduct_SumaTodasLasUbicaciones(t *testing.T) {
	totals := optimization.TotalAvailableByProduct(syncPositions())

	assert.Equal(t, 135, totals["PROD-001"], "bodegas y tiendas suman por igual")
	assert.Equal(t, 53, totals["PROD-002"])
	assert.Len(t, totals, 2)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// syncPositions snapshot de prueba: 2 productos en 2 bodegas y 2 tiendas.
func syncPositions() []entity.InventoryPosition {
	return []entity.InventoryPosition{
		syncPosition("PROD-001", "warehouse_norte", entity.LocationTypeWarehouse, 100, 20, 80, 10),
		syncPosition("PROD-001", "warehouse_sur", entity.LocationTypeWarehouse, 50, 0, 50, 10),
		syncPosition("PROD-002", "warehouse_norte", entity.LocationTypeWarehouse, 30, 15, 15, 4),
		syncPosition("PROD-001", "store_001", entity.LocationTypeStore, 10, 5, 5, 10),
		syncPosition("PROD-002", "store_001", entity.LocationTypeStore, 0, 0, 0, 4),
		syncPosition("PROD-002", "store_002", entity.LocationTypeStore, 40, 2, 38, 4),
	}
}

func syncPosition(productID, locationID, locationType string, onHand, reserved, available int, unitCost int64) entity.InventoryPosition {
	return entity.InventoryPosition{
		ProductID:         productID,
		LocationID:        locationID,
		LocationName:      locationID,
		LocationType:      locationType,
		QuantityOnHand:    onHand,
		QuantityReserved:  reserved,
		QuantityAvailable: available,
		UnitCost:          decimal.NewFromInt(unitCost),
		LastUpdated:       syncNow,
	}
}
