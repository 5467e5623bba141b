package entity

import "time"

// DailyDemand demanda agregada de un producto en un día calendario.
// Es la fila cruda que entrega el repositorio de ventas (SUM(quantity) por día);
// las estadísticas se calculan en el dominio, no en SQL.
type DailyDemand struct {
	ProductID string
	Day       time.Time
	Quantity  float64
}

// DemandStatistic estadísticas de demanda de un producto sobre la ventana histórica.
// Solo se construye para productos con historial suficiente; inmutable una vez creada.
type DemandStatistic struct {
	ProductID         string  `json:"product_id"`
	AvgDailyDemand    float64 `json:"avg_daily_demand"`
	StddevDailyDemand float64 `json:"stddev_daily_demand"`
	MaxDailyDemand    float64 `json:"max_daily_demand"`
	MinDailyDemand    float64 `json:"min_daily_demand"`
	DaysOfHistory     int     `json:"days_of_history"`
}
