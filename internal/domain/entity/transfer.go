package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRecommendation traslado sugerido entre ubicaciones para cubrir un faltante.
// Solo se emite cuando CostSavings > 0; inmutable una vez emitido.
type TransferRecommendation struct {
	ProductID             string          `json:"product_id"`
	FromLocationID        string          `json:"from_location_id"`
	FromLocationName      string          `json:"from_location_name"`
	ToLocationID          string          `json:"to_location_id"`
	ToLocationName        string          `json:"to_location_name"`
	TransferQuantity      int             `json:"transfer_quantity"`
	TransferCost          decimal.Decimal `json:"transfer_cost"`
	PurchaseCostAvoided   decimal.Decimal `json:"purchase_cost_avoided"`
	CostSavings           decimal.Decimal `json:"cost_savings"`
	Priority              string          `json:"priority"`
	Reason                string          `json:"reason"`
	EstimatedTransferDays int             `json:"estimated_transfer_days"`
}

// AllocationSummary métricas agregadas de la asignación traslado vs compra.
// Se recalculan siempre desde las listas emitidas, nunca por acumulación.
type AllocationSummary struct {
	TransfersRecommended      int             `json:"transfers_recommended"`
	PurchaseOrdersRecommended int             `json:"purchase_orders_recommended"`
	UnitsViaTransfer          int             `json:"units_via_transfer"`
	UnitsViaPurchase          int             `json:"units_via_purchase"`
	TransferCost              decimal.Decimal `json:"transfer_cost"`
	PurchaseOrderValue        decimal.Decimal `json:"purchase_order_value"`
	CostSavingsFromTransfers  decimal.Decimal `json:"cost_savings_from_transfers"`
	OriginalPOCount           int             `json:"original_po_count"`
	OriginalPOValue           decimal.Decimal `json:"original_po_value"`
}

// AllocationOutcome resultado pareado de traslados y órdenes de compra.
// Es la unidad que se entrega al workflow de aprobación y notificación.
type AllocationOutcome struct {
	RecommendationTimestamp time.Time                `json:"recommendation_timestamp"`
	Transfers               []TransferRecommendation `json:"transfer_recommendations"`
	PurchaseOrders          []ReorderRecommendation  `json:"purchase_order_recommendations"`
	Summary                 AllocationSummary        `json:"summary"`
}
