package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prioridades de reorden según el estado de stock.
const (
	PriorityCritical = 1 // critical
	PriorityHigh     = 2 // low
	PriorityNormal   = 3 // adequate
)

// Etiquetas de prioridad para consumo humano y del workflow de aprobación.
const (
	PriorityLabelCritical = "CRITICAL"
	PriorityLabelHigh     = "HIGH"
	PriorityLabelNormal   = "NORMAL"
)

// ReorderRecommendation orden de compra sugerida para un producto bajo punto de reorden.
// La crea el evaluador de reorden; el asignador de traslados puede reducirla
// (Notes explica la reducción) o descartarla si los traslados cubren el faltante.
type ReorderRecommendation struct {
	ProductID            string          `json:"product_id"`
	CurrentStock         int             `json:"current_stock"`
	ReorderPoint         int             `json:"reorder_point"`
	SafetyStock          int             `json:"safety_stock"`
	ShortageQty          int             `json:"shortage_qty"`
	RecommendedOrderQty  int             `json:"recommended_order_qty"`
	UnitCost             decimal.Decimal `json:"unit_cost"`
	TotalOrderValue      decimal.Decimal `json:"total_order_value"`
	SupplierID           string          `json:"supplier_id"`
	SupplierName         string          `json:"supplier_name"`
	Priority             int             `json:"priority"`
	PriorityLabel        string          `json:"priority_label"`
	LeadTimeDays         int             `json:"lead_time_days"`
	ExpectedDeliveryDate string          `json:"expected_delivery_date"` // YYYY-MM-DD
	AvgDailyDemand       float64         `json:"avg_daily_demand"`
	MOQ                  int             `json:"moq"`
	MasterDataMissing    bool            `json:"master_data_missing,omitempty"`
	Notes                string          `json:"notes,omitempty"`
}

// ReorderSummary métricas agregadas de la evaluación de reorden.
type ReorderSummary struct {
	TotalOrderValue      decimal.Decimal `json:"total_order_value"`
	TotalUnitsToOrder    int             `json:"total_units_to_order"`
	CriticalOrders       int             `json:"critical_orders"`
	HighPriorityOrders   int             `json:"high_priority_orders"`
	NormalPriorityOrders int             `json:"normal_priority_orders"`
	UniqueSuppliers      int             `json:"unique_suppliers"`
	AvgOrderValue        decimal.Decimal `json:"avg_order_value"`
	MissingMasterData    int             `json:"missing_master_data"`
}

// ReorderResult salida completa del evaluador de reorden.
// Recommendations viene ordenada por (prioridad asc, valor desc); ese orden es
// parte del contrato que consumen el asignador de traslados y los reportes.
type ReorderResult struct {
	EvaluationTimestamp time.Time               `json:"evaluation_timestamp"`
	ItemsNeedingReorder int                     `json:"items_needing_reorder"`
	Recommendations     []ReorderRecommendation `json:"reorder_recommendations"`
	Summary             ReorderSummary          `json:"summary"`
}
