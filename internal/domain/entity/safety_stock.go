package entity

import "time"

// Estados de stock, evaluados en este orden fijo (gana la primera condición).
const (
	StockStatusCritical = "critical" // disponible < safety stock crítico
	StockStatusLow      = "low"      // disponible < safety stock estándar
	StockStatusAdequate = "adequate" // disponible < punto de reorden
	StockStatusExcess   = "excess"
)

// Nombres de los niveles de servicio soportados.
const (
	ServiceLevelStandard = "standard"
	ServiceLevelHigh     = "high"
	ServiceLevelCritical = "critical"
)

// SafetyStockRecord safety stock y punto de reorden calculados para un producto.
// Arrastra las estadísticas de demanda porque las etapas siguientes
// (reorden y traslados) las consumen sin volver a consultar la historia.
type SafetyStockRecord struct {
	ProductID          string         `json:"product_id"`
	AvgDailyDemand     float64        `json:"avg_daily_demand"`
	StddevDailyDemand  float64        `json:"stddev_daily_demand"`
	DaysOfHistory      int            `json:"days_of_history"`
	SafetyStockByLevel map[string]int `json:"safety_stock_by_level"`
	ReorderPoint       int            `json:"reorder_point"`
	TotalAvailable     int            `json:"total_available"`
	StockStatus        string         `json:"stock_status"`
}

// SafetyStock devuelve las unidades del nivel indicado (0 si el nivel no existe).
func (r SafetyStockRecord) SafetyStock(level string) int {
	return r.SafetyStockByLevel[level]
}

// SafetyStockSummary métricas agregadas del cálculo de safety stock.
type SafetyStockSummary struct {
	CriticalStockItems     int     `json:"critical_stock_items"`
	LowStockItems          int     `json:"low_stock_items"`
	AdequateStockItems     int     `json:"adequate_stock_items"`
	ExcessStockItems       int     `json:"excess_stock_items"`
	AvgSafetyStockUnits    float64 `json:"avg_safety_stock_units"`
	TotalSafetyStockNeeded int     `json:"total_safety_stock_needed"`
}

// SafetyStockResult salida completa del motor de safety stock. Solo lectura.
type SafetyStockResult struct {
	CalculationTimestamp time.Time           `json:"calculation_timestamp"`
	ProductsAnalyzed     int                 `json:"products_analyzed"`
	LeadTimeDays         int                 `json:"lead_time_days"`
	ServiceLevels        map[string]float64  `json:"service_levels"`
	Records              []SafetyStockRecord `json:"safety_stock_data"`
	Summary              SafetyStockSummary  `json:"summary"`
}
