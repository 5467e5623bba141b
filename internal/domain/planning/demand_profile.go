package planning

import (
	"math"
	"sort"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// DemandProfileBuilder convierte la demanda diaria cruda en estadísticas por
// producto. Productos con menos de Config.MinHistoryDays días de historia se
// excluyen; nunca se rellenan con estadísticas por defecto.
type DemandProfileBuilder struct {
	cfg Config
}

// NewDemandProfileBuilder construye el builder con la configuración dada.
func NewDemandProfileBuilder(cfg Config) *DemandProfileBuilder {
	return &DemandProfileBuilder{cfg: cfg}
}

// Build agrupa la demanda diaria por producto y calcula media, desviación
// estándar muestral (n-1, como STDDEV de PostgreSQL), máximo, mínimo y días
// de historia. La salida queda ordenada por product_id.
func (b *DemandProfileBuilder) Build(history []entity.DailyDemand) []entity.DemandStatistic {
	byProduct := make(map[string][]float64)
	for _, d := range history {
		byProduct[d.ProductID] = append(byProduct[d.ProductID], d.Quantity)
	}

	stats := make([]entity.DemandStatistic, 0, len(byProduct))
	for productID, daily := range byProduct {
		if len(daily) < b.cfg.MinHistoryDays {
			continue
		}
		stats = append(stats, buildStatistic(productID, daily))
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].ProductID < stats[j].ProductID
	})
	return stats
}

func buildStatistic(productID string, daily []float64) entity.DemandStatistic {
	n := len(daily)

	sum := 0.0
	maxd := daily[0]
	mind := daily[0]
	for _, q := range daily {
		sum += q
		if q > maxd {
			maxd = q
		}
		if q < mind {
			mind = q
		}
	}
	mean := sum / float64(n)

	// Desviación estándar muestral; con menos de 2 observaciones es 0.
	stddev := 0.0
	if n >= 2 {
		var sq float64
		for _, q := range daily {
			d := q - mean
			sq += d * d
		}
		stddev = math.Sqrt(sq / float64(n-1))
	}

	return entity.DemandStatistic{
		ProductID:         productID,
		AvgDailyDemand:    mean,
		StddevDailyDemand: stddev,
		MaxDailyDemand:    maxd,
		MinDailyDemand:    mind,
		DaysOfHistory:     n,
	}
}
