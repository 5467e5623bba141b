package planning

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// Motivo fijo de todo traslado recomendado.
const transferReason = "Excess inventory available at source location"

// TransferAllocator resuelve cada faltante trasladando excedentes de otras
// ubicaciones antes de recurrir a la orden de compra.
//
// Las recomendaciones se procesan en su orden de entrada (prioridad), de modo
// que los productos críticos compiten primero por los excedentes. El excedente
// de cada ubicación se recalcula por producto contra el mismo snapshot sin
// descontar lo ya asignado a otros productos de la misma corrida; es una
// simplificación conocida del sistema y se conserva tal cual.
type TransferAllocator struct {
	cfg Config
}

// NewTransferAllocator construye el asignador con la configuración dada.
func NewTransferAllocator(cfg Config) *TransferAllocator {
	return &TransferAllocator{cfg: cfg}
}

// origen candidato con su excedente calculado para un producto.
type transferSource struct {
	pos    entity.InventoryPosition
	excess int
}

// Allocate decide, por recomendación de reorden, cuánto cubrir vía traslado y
// cuánto queda como orden de compra. Invariante por producto:
// faltante original = unidades trasladadas + unidades en la orden resultante.
//
// Asimetría deliberada del flujo: sin ubicaciones candidatas la orden original
// pasa intacta; con candidatas (aunque todos los traslados se rechacen) la
// orden se reemplaza por el faltante restante y se anota la reducción.
func (a *TransferAllocator) Allocate(
	reorder entity.ReorderResult,
	positions []entity.InventoryPosition,
	now time.Time,
) entity.AllocationOutcome {
	transfers := make([]entity.TransferRecommendation, 0)
	purchaseOrders := make([]entity.ReorderRecommendation, 0)

	if len(reorder.Recommendations) == 0 {
		return entity.AllocationOutcome{
			RecommendationTimestamp: now,
			Transfers:               transfers,
			PurchaseOrders:          purchaseOrders,
			Summary:                 a.summarize(transfers, purchaseOrders, reorder),
		}
	}

	candidatesByProduct := groupCandidates(positions)

	for _, rec := range reorder.Recommendations {
		candidates := candidatesByProduct[rec.ProductID]
		if len(candidates) == 0 {
			purchaseOrders = append(purchaseOrders, rec)
			continue
		}

		sources := a.rankSources(candidates, rec.AvgDailyDemand)
		remaining := rec.ShortageQty

		for _, src := range sources {
			if remaining <= 0 {
				break
			}
			qty := src.excess
			if qty > remaining {
				qty = remaining
			}
			if qty < a.cfg.MinTransferQty {
				continue
			}

			quantity := decimal.NewFromInt(int64(qty))
			transferCost := quantity.Mul(a.cfg.TransferCostPerUnit)
			purchaseCostAvoided := quantity.Mul(rec.UnitCost)
			costSavings := purchaseCostAvoided.Sub(transferCost)

			// Un traslado que no ahorra dinero se rechaza aunque cierre el
			// faltante; esas unidades quedan en la orden de compra.
			if !costSavings.GreaterThan(decimal.Zero) {
				continue
			}

			transfers = append(transfers, entity.TransferRecommendation{
				ProductID:             rec.ProductID,
				FromLocationID:        src.pos.LocationID,
				FromLocationName:      src.pos.LocationName,
				ToLocationID:          a.cfg.TransferHubID,
				ToLocationName:        a.cfg.TransferHubName,
				TransferQuantity:      qty,
				TransferCost:          transferCost,
				PurchaseCostAvoided:   purchaseCostAvoided,
				CostSavings:           costSavings,
				Priority:              rec.PriorityLabel,
				Reason:                transferReason,
				EstimatedTransferDays: a.cfg.TransferEstimatedDays,
			})
			remaining -= qty
		}

		if remaining > 0 {
			reduced := rec
			reduced.RecommendedOrderQty = remaining
			reduced.TotalOrderValue = rec.UnitCost.Mul(decimal.NewFromInt(int64(remaining)))
			reduced.Notes = fmt.Sprintf("Reduced by %d units due to transfers", rec.ShortageQty-remaining)
			purchaseOrders = append(purchaseOrders, reduced)
		}
		// remaining == 0: los traslados cubren todo, la orden se descarta.
	}

	return entity.AllocationOutcome{
		RecommendationTimestamp: now,
		Transfers:               transfers,
		PurchaseOrders:          purchaseOrders,
		Summary:                 a.summarize(transfers, purchaseOrders, reorder),
	}
}

// groupCandidates indexa por producto las posiciones con unidades trasladables.
// El snapshot llega ordenado por location_id; ese orden es el desempate estable
// cuando dos orígenes tienen el mismo excedente.
func groupCandidates(positions []entity.InventoryPosition) map[string][]entity.InventoryPosition {
	byProduct := make(map[string][]entity.InventoryPosition)
	for _, p := range positions {
		if p.QuantityAvailable <= 0 || p.TransferrableQty() <= 0 {
			continue
		}
		byProduct[p.ProductID] = append(byProduct[p.ProductID], p)
	}
	return byProduct
}

// rankSources calcula el excedente de cada origen y los ordena de mayor a
// menor. Excedente = trasladable - demanda_promedio × días objetivo de
// cobertura, redondeado hacia abajo y acotado a >= 0: el origen nunca queda
// por debajo de su cobertura objetivo.
func (a *TransferAllocator) rankSources(
	candidates []entity.InventoryPosition,
	avgDailyDemand float64,
) []transferSource {
	target := avgDailyDemand * float64(a.cfg.TargetDaysOfSupply)

	sources := make([]transferSource, 0, len(candidates))
	for _, pos := range candidates {
		excess := int(math.Floor(float64(pos.TransferrableQty()) - target))
		if excess < 0 {
			excess = 0
		}
		sources = append(sources, transferSource{pos: pos, excess: excess})
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].excess > sources[j].excess
	})
	return sources
}

// summarize recalcula los agregados desde las listas emitidas; nunca se
// acumulan incrementalmente durante la asignación.
func (a *TransferAllocator) summarize(
	transfers []entity.TransferRecommendation,
	purchaseOrders []entity.ReorderRecommendation,
	reorder entity.ReorderResult,
) entity.AllocationSummary {
	var sum entity.AllocationSummary

	for _, t := range transfers {
		sum.UnitsViaTransfer += t.TransferQuantity
		sum.TransferCost = sum.TransferCost.Add(t.TransferCost)
		sum.CostSavingsFromTransfers = sum.CostSavingsFromTransfers.Add(t.CostSavings)
	}
	for _, po := range purchaseOrders {
		sum.UnitsViaPurchase += po.RecommendedOrderQty
		sum.PurchaseOrderValue = sum.PurchaseOrderValue.Add(po.TotalOrderValue)
	}

	sum.TransfersRecommended = len(transfers)
	sum.PurchaseOrdersRecommended = len(purchaseOrders)
	sum.OriginalPOCount = len(reorder.Recommendations)
	sum.OriginalPOValue = reorder.Summary.TotalOrderValue
	return sum
}
