// Package optimization contiene el caso de uso del pipeline de optimización de
// inventario: sincronización del snapshot, perfiles de demanda, safety stock,
// reorden y transferencias.
package optimization

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// BuildSnapshot arma la lectura puntual del inventario a partir de las
// posiciones frescas. TotalSKUs cuenta filas producto-ubicación (una posición
// por SKU por ubicación), TotalLocations cuenta ubicaciones distintas.
func BuildSnapshot(positions []entity.InventoryPosition, now time.Time) entity.InventorySnapshot {
	locations := make(map[string]struct{})
	var summary entity.SnapshotSummary

	for _, p := range positions {
		locations[p.LocationID] = struct{}{}
		summary.TotalUnits += p.QuantityOnHand
		summary.TotalValue = summary.TotalValue.Add(
			p.UnitCost.Mul(decimal.NewFromInt(int64(p.QuantityOnHand))))
		switch p.LocationType {
		case entity.LocationTypeWarehouse:
			summary.Warehouses++
		case entity.LocationTypeStore:
			summary.Stores++
		}
	}

	return entity.InventorySnapshot{
		SnapshotTimestamp: now,
		TotalSKUs:         len(positions),
		TotalLocations:    len(locations),
		Positions:         positions,
		Summary:           summary,
	}
}

// SyncWarehouses agrega las posiciones de bodega por producto y calcula las
// métricas globales de rotación y capacidad.
func SyncWarehouses(positions []entity.InventoryPosition, now time.Time) entity.WarehouseSyncResult {
	type acc struct {
		onHand    int
		available int
		reserved  int
		rows      int
	}

	byProduct := make(map[string]*acc)
	locations := make(map[string]struct{})
	var turnoverSum float64
	var rows int
	var capacity int

	for _, p := range positions {
		if p.LocationType != entity.LocationTypeWarehouse {
			continue
		}
		rows++
		locations[p.LocationID] = struct{}{}
		capacity += p.QuantityOnHand

		// Rotación por fila: disponible / reservado, con reservado 0 tratado
		// como 1 para no dividir por cero.
		denom := p.QuantityReserved
		if denom == 0 {
			denom = 1
		}
		turnoverSum += float64(p.QuantityAvailable) / float64(denom)

		a, ok := byProduct[p.ProductID]
		if !ok {
			a = &acc{}
			byProduct[p.ProductID] = a
		}
		a.onHand += p.QuantityOnHand
		a.available += p.QuantityAvailable
		a.reserved += p.QuantityReserved
		a.rows++
	}

	summaries := make([]entity.WarehouseProductSummary, 0, len(byProduct))
	for productID, a := range byProduct {
		// Cobertura: disponible total entre la reserva promedio por bodega;
		// promedio exactamente 0 se trata como 1.
		meanReserved := float64(a.reserved) / float64(a.rows)
		if meanReserved == 0 {
			meanReserved = 1
		}
		summaries = append(summaries, entity.WarehouseProductSummary{
			ProductID:      productID,
			TotalOnHand:    a.onHand,
			TotalAvailable: a.available,
			TotalReserved:  a.reserved,
			WarehouseCount: a.rows,
			DaysOfSupply:   float64(a.available) / meanReserved,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ProductID < summaries[j].ProductID })

	var metrics entity.WarehouseMetrics
	metrics.TotalCapacityUtilized = capacity
	if rows > 0 {
		metrics.AvgTurnoverRatio = turnoverSum / float64(rows)
	}

	return entity.WarehouseSyncResult{
		SyncTimestamp:  now,
		WarehouseCount: len(locations),
		TotalProducts:  len(summaries),
		Summary:        summaries,
		Metrics:        metrics,
	}
}

// SyncStores agrega las posiciones de tienda por producto y levanta los
// conteos de riesgo de quiebre y sobre-stock.
func SyncStores(positions []entity.InventoryPosition, now time.Time) entity.StoreSyncResult {
	type acc struct {
		onHand    int
		available int
		reserved  int
		atRisk    int
		overstock int
		rows      int
	}

	byProduct := make(map[string]*acc)
	locations := make(map[string]struct{})
	var alerts entity.StoreAlerts

	for _, p := range positions {
		if p.LocationType != entity.LocationTypeStore {
			continue
		}
		locations[p.LocationID] = struct{}{}

		// Una tienda sin disponible ni reservado también cuenta como riesgo:
		// disponible <= reservado con ambos en 0.
		atRisk := p.QuantityAvailable <= p.QuantityReserved
		overstock := p.QuantityAvailable > p.QuantityReserved*3
		if atRisk {
			alerts.StockoutRiskCount++
		}
		if overstock {
			alerts.OverstockCount++
		}

		a, ok := byProduct[p.ProductID]
		if !ok {
			a = &acc{}
			byProduct[p.ProductID] = a
		}
		a.onHand += p.QuantityOnHand
		a.available += p.QuantityAvailable
		a.reserved += p.QuantityReserved
		a.rows++
		if atRisk {
			a.atRisk++
		}
		if overstock {
			a.overstock++
		}
	}

	summaries := make([]entity.StoreProductSummary, 0, len(byProduct))
	for productID, a := range byProduct {
		summaries = append(summaries, entity.StoreProductSummary{
			ProductID:         productID,
			TotalOnHand:       a.onHand,
			TotalAvailable:    a.available,
			TotalReserved:     a.reserved,
			StoresAtRisk:      a.atRisk,
			StoresOverstocked: a.overstock,
			StoreCount:        a.rows,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ProductID < summaries[j].ProductID })

	return entity.StoreSyncResult{
		SyncTimestamp: now,
		StoreCount:    len(locations),
		TotalProducts: len(summaries),
		Summary:       summaries,
		Alerts:        alerts,
	}
}

// TotalAvailableByProduct suma el disponible por producto sobre todas las
// ubicaciones del snapshot. Es la cifra de disponibilidad que consume el
// motor de safety stock.
func TotalAvailableByProduct(positions []entity.InventoryPosition) map[string]int {
	totals := make(map[string]int, len(positions))
	for _, p := range positions {
		totals[p.ProductID] += p.QuantityAvailable
	}
	return totals
}
