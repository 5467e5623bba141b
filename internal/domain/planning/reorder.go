package planning

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// ReorderEvaluator decide qué productos necesitan orden de compra y de cuánto.
//
// Candidato: estado en {critical, low, adequate} Y disponible <= punto de
// reorden. La doble condición protege contra un estado calculado con una
// cifra de disponibilidad distinta a la comparada.
//
// Tamaño de la orden: faltante + demanda durante lead time + safety stock
// estándar, con piso de MOQ y redondeo hacia arriba a múltiplos de pack size.
type ReorderEvaluator struct {
	cfg Config
}

// NewReorderEvaluator construye el evaluador con la configuración dada.
func NewReorderEvaluator(cfg Config) *ReorderEvaluator {
	return &ReorderEvaluator{cfg: cfg}
}

// Evaluate genera las recomendaciones de reorden a partir del safety stock y
// el maestro de productos. Un candidato sin fila en el maestro NO se descarta:
// se marca MasterDataMissing, con MOQ y pack size 1, costo 0 y proveedor vacío,
// porque el faltante existe igual. now fija la fecha de entrega esperada.
func (e *ReorderEvaluator) Evaluate(
	safetyStock entity.SafetyStockResult,
	master map[string]entity.ProductMaster,
	now time.Time,
) entity.ReorderResult {
	recommendations := make([]entity.ReorderRecommendation, 0)

	for _, r := range safetyStock.Records {
		if !isReorderCandidate(r) {
			continue
		}
		recommendations = append(recommendations, e.buildRecommendation(r, master, now))
	}

	// Orden contractual: prioridad ascendente, valor descendente.
	// Empates por product_id para que corridas idénticas den salidas idénticas.
	sort.SliceStable(recommendations, func(i, j int) bool {
		a, b := recommendations[i], recommendations[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if !a.TotalOrderValue.Equal(b.TotalOrderValue) {
			return a.TotalOrderValue.GreaterThan(b.TotalOrderValue)
		}
		return a.ProductID < b.ProductID
	})

	return entity.ReorderResult{
		EvaluationTimestamp: now,
		ItemsNeedingReorder: len(recommendations),
		Recommendations:     recommendations,
		Summary:             summarizeReorder(recommendations),
	}
}

func isReorderCandidate(r entity.SafetyStockRecord) bool {
	switch r.StockStatus {
	case entity.StockStatusCritical, entity.StockStatusLow, entity.StockStatusAdequate:
		return r.TotalAvailable <= r.ReorderPoint
	default:
		return false
	}
}

func (e *ReorderEvaluator) buildRecommendation(
	r entity.SafetyStockRecord,
	master map[string]entity.ProductMaster,
	now time.Time,
) entity.ReorderRecommendation {
	m, hasMaster := master[r.ProductID]
	if !hasMaster {
		m = entity.ProductMaster{MOQ: 1, PackSize: 1, UnitCost: decimal.Zero}
	}

	leadTime := m.LeadTimeDays
	if leadTime <= 0 {
		leadTime = e.cfg.DefaultLeadTimeDays
	}

	shortage := r.ReorderPoint - r.TotalAvailable
	if shortage < 0 {
		shortage = 0
	}

	ssStandard := r.SafetyStock(entity.ServiceLevelStandard)
	leadTimeDemand := r.AvgDailyDemand * float64(leadTime)
	qty := int(math.Round(float64(shortage) + leadTimeDemand + float64(ssStandard)))

	// Piso de MOQ; un MOQ ausente o 0 equivale a 1.
	moqFloor := m.MOQ
	if moqFloor <= 0 {
		moqFloor = 1
	}
	if qty < moqFloor {
		qty = moqFloor
	}

	// Redondeo hacia arriba a múltiplos de pack size; pack 0 no restringe.
	if m.PackSize > 0 {
		qty = ((qty + m.PackSize - 1) / m.PackSize) * m.PackSize
	}

	orderValue := m.UnitCost.Mul(decimal.NewFromInt(int64(qty)))

	var priority int
	var label string
	switch r.StockStatus {
	case entity.StockStatusCritical:
		priority, label = entity.PriorityCritical, entity.PriorityLabelCritical
	case entity.StockStatusLow:
		priority, label = entity.PriorityHigh, entity.PriorityLabelHigh
	default:
		// adequate; isReorderCandidate no deja pasar otros estados
		priority, label = entity.PriorityNormal, entity.PriorityLabelNormal
	}

	return entity.ReorderRecommendation{
		ProductID:            r.ProductID,
		CurrentStock:         r.TotalAvailable,
		ReorderPoint:         r.ReorderPoint,
		SafetyStock:          ssStandard,
		ShortageQty:          shortage,
		RecommendedOrderQty:  qty,
		UnitCost:             m.UnitCost,
		TotalOrderValue:      orderValue,
		SupplierID:           m.SupplierID,
		SupplierName:         m.SupplierName,
		Priority:             priority,
		PriorityLabel:        label,
		LeadTimeDays:         leadTime,
		ExpectedDeliveryDate: now.AddDate(0, 0, leadTime).Format("2006-01-02"),
		AvgDailyDemand:       r.AvgDailyDemand,
		MOQ:                  moqFloor,
		MasterDataMissing:    !hasMaster,
	}
}

func summarizeReorder(recs []entity.ReorderRecommendation) entity.ReorderSummary {
	var sum entity.ReorderSummary
	suppliers := make(map[string]struct{})

	for _, r := range recs {
		sum.TotalOrderValue = sum.TotalOrderValue.Add(r.TotalOrderValue)
		sum.TotalUnitsToOrder += r.RecommendedOrderQty
		switch r.Priority {
		case entity.PriorityCritical:
			sum.CriticalOrders++
		case entity.PriorityHigh:
			sum.HighPriorityOrders++
		case entity.PriorityNormal:
			sum.NormalPriorityOrders++
		}
		if r.SupplierID != "" {
			suppliers[r.SupplierID] = struct{}{}
		}
		if r.MasterDataMissing {
			sum.MissingMasterData++
		}
	}

	sum.UniqueSuppliers = len(suppliers)
	if len(recs) > 0 {
		sum.AvgOrderValue = sum.TotalOrderValue.Div(decimal.NewFromInt(int64(len(recs)))).Round(2)
	}
	return sum
}
