package planning

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// SafetyStockEngine calcula safety stock y punto de reorden por producto.
//
// Fórmula: safety_stock = Z(nivel de servicio) × σ_demanda_diaria × √(lead time),
// redondeado a unidades enteras y acotado a >= 0.
// reorder_point = demanda_promedio × lead time + safety_stock(standard).
type SafetyStockEngine struct {
	cfg Config
}

// NewSafetyStockEngine construye el motor con la configuración dada.
func NewSafetyStockEngine(cfg Config) *SafetyStockEngine {
	return &SafetyStockEngine{cfg: cfg}
}

// Calculate deriva los registros de safety stock para cada estadística de
// demanda y clasifica el estado de stock contra el disponible actual.
// availableByProduct trae el disponible total (bodegas + tiendas) por producto;
// un producto ausente se trata como disponible 0. now alimenta solo el
// timestamp del resultado.
func (e *SafetyStockEngine) Calculate(
	stats []entity.DemandStatistic,
	availableByProduct map[string]int,
	now time.Time,
) entity.SafetyStockResult {
	// Z por nivel de servicio, una sola vez.
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	zByLevel := make(map[string]float64, len(e.cfg.ServiceLevels))
	for level, p := range e.cfg.ServiceLevels {
		zByLevel[level] = normal.Quantile(p)
	}

	sqrtLeadTime := math.Sqrt(float64(e.cfg.DefaultLeadTimeDays))

	records := make([]entity.SafetyStockRecord, 0, len(stats))
	for _, s := range stats {
		byLevel := make(map[string]int, len(zByLevel))
		for level, z := range zByLevel {
			units := int(math.Round(z * s.StddevDailyDemand * sqrtLeadTime))
			if units < 0 {
				units = 0
			}
			byLevel[level] = units
		}

		ssStandard := byLevel[entity.ServiceLevelStandard]
		reorderPoint := int(math.Round(s.AvgDailyDemand*float64(e.cfg.DefaultLeadTimeDays) + float64(ssStandard)))

		available := availableByProduct[s.ProductID]

		records = append(records, entity.SafetyStockRecord{
			ProductID:          s.ProductID,
			AvgDailyDemand:     s.AvgDailyDemand,
			StddevDailyDemand:  s.StddevDailyDemand,
			DaysOfHistory:      s.DaysOfHistory,
			SafetyStockByLevel: byLevel,
			ReorderPoint:       reorderPoint,
			TotalAvailable:     available,
			StockStatus:        classifyStatus(available, byLevel, reorderPoint),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ProductID < records[j].ProductID
	})

	return entity.SafetyStockResult{
		CalculationTimestamp: now,
		ProductsAnalyzed:     len(records),
		LeadTimeDays:         e.cfg.DefaultLeadTimeDays,
		ServiceLevels:        e.cfg.ServiceLevels,
		Records:              records,
		Summary:              summarizeSafetyStock(records),
	}
}

// classifyStatus evalúa el estado en orden fijo; gana la primera condición.
func classifyStatus(available int, byLevel map[string]int, reorderPoint int) string {
	switch {
	case available < byLevel[entity.ServiceLevelCritical]:
		return entity.StockStatusCritical
	case available < byLevel[entity.ServiceLevelStandard]:
		return entity.StockStatusLow
	case available < reorderPoint:
		return entity.StockStatusAdequate
	default:
		return entity.StockStatusExcess
	}
}

func summarizeSafetyStock(records []entity.SafetyStockRecord) entity.SafetyStockSummary {
	var sum entity.SafetyStockSummary
	totalStandard := 0
	for _, r := range records {
		switch r.StockStatus {
		case entity.StockStatusCritical:
			sum.CriticalStockItems++
		case entity.StockStatusLow:
			sum.LowStockItems++
		case entity.StockStatusAdequate:
			sum.AdequateStockItems++
		case entity.StockStatusExcess:
			sum.ExcessStockItems++
		}
		totalStandard += r.SafetyStock(entity.ServiceLevelStandard)
	}
	sum.TotalSafetyStockNeeded = totalStandard
	if len(records) > 0 {
		sum.AvgSafetyStockUnits = float64(totalStandard) / float64(len(records))
	}
	return sum
}
