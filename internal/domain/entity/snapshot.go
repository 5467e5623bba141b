package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotSummary totales del snapshot de inventario.
// Warehouses y Stores cuentan filas producto-ubicación, no ubicaciones distintas.
type SnapshotSummary struct {
	TotalUnits int             `json:"total_units"`
	TotalValue decimal.Decimal `json:"total_value"`
	Warehouses int             `json:"warehouses"`
	Stores     int             `json:"stores"`
}

// InventorySnapshot lectura puntual del inventario por (producto, ubicación).
type InventorySnapshot struct {
	SnapshotTimestamp time.Time           `json:"snapshot_timestamp"`
	TotalSKUs         int                 `json:"total_skus"`
	TotalLocations    int                 `json:"total_locations"`
	Positions         []InventoryPosition `json:"-"`
	Summary           SnapshotSummary     `json:"summary"`
}

// WarehouseProductSummary agregado por producto sobre las bodegas del snapshot.
// DaysOfSupply = total disponible / promedio de reservas por bodega (0 se trata como 1).
type WarehouseProductSummary struct {
	ProductID      string  `json:"product_id"`
	TotalOnHand    int     `json:"total_on_hand"`
	TotalAvailable int     `json:"total_available"`
	TotalReserved  int     `json:"total_reserved"`
	WarehouseCount int     `json:"warehouse_count"`
	DaysOfSupply   float64 `json:"days_of_supply"`
}

// WarehouseMetrics métricas globales de bodegas.
type WarehouseMetrics struct {
	TotalCapacityUtilized int     `json:"total_capacity_utilized"`
	AvgTurnoverRatio      float64 `json:"avg_turnover_ratio"`
}

// WarehouseSyncResult resultado de la sincronización de bodegas.
type WarehouseSyncResult struct {
	SyncTimestamp  time.Time                 `json:"sync_timestamp"`
	WarehouseCount int                       `json:"warehouse_count"`
	TotalProducts  int                       `json:"total_products"`
	Summary        []WarehouseProductSummary `json:"warehouse_summary"`
	Metrics        WarehouseMetrics          `json:"metrics"`
}

// StoreProductSummary agregado por producto sobre las tiendas del snapshot.
// StoresAtRisk cuenta tiendas con disponible <= reservado; StoresOverstocked
// cuenta tiendas con disponible > 3x reservado.
type StoreProductSummary struct {
	ProductID         string `json:"product_id"`
	TotalOnHand       int    `json:"total_on_hand"`
	TotalAvailable    int    `json:"total_available"`
	TotalReserved     int    `json:"total_reserved"`
	StoresAtRisk      int    `json:"stores_at_risk"`
	StoresOverstocked int    `json:"stores_overstocked"`
	StoreCount        int    `json:"store_count"`
}

// StoreAlerts conteos de situaciones de riesgo detectadas en tiendas.
type StoreAlerts struct {
	StockoutRiskCount int `json:"stockout_risk_count"`
	OverstockCount    int `json:"overstock_count"`
}

// StoreSyncResult resultado de la sincronización de tiendas.
type StoreSyncResult struct {
	SyncTimestamp time.Time             `json:"sync_timestamp"`
	StoreCount    int                   `json:"store_count"`
	TotalProducts int                   `json:"total_products"`
	Summary       []StoreProductSummary `json:"store_summary"`
	Alerts        StoreAlerts           `json:"alerts"`
}
