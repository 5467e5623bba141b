package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de registro en la cola de aprobación.
const (
	ApprovalTypeTransfer      = "transfer"
	ApprovalTypePurchaseOrder = "purchase_order"
)

// Estados de los registros y de la sumisión.
const (
	ApprovalStatusPending      = "pending"
	ApprovalStatusAutoApproved = "auto_approved"

	SubmissionStatusPending      = "pending_approval"
	SubmissionStatusAutoApproved = "auto_approved"
)

// ApprovalRecord ítem individual (traslado u orden de compra) en la cola de aprobación.
// Metadata guarda el detalle específico del tipo: ahorro y plazo para traslados,
// proveedor y entrega esperada para compras.
type ApprovalRecord struct {
	SubmissionID  string          `json:"submission_id"`
	ApprovalType  string          `json:"approval_type"`
	ProductID     string          `json:"product_id"`
	FromLocation  string          `json:"from_location,omitempty"`
	ToLocation    string          `json:"to_location,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	Quantity      int             `json:"quantity"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Priority      string          `json:"priority"`
	ApprovalLevel string          `json:"approval_level"`
	Status        string          `json:"status"`
	SubmittedAt   time.Time       `json:"submitted_at"`
	Metadata      map[string]any  `json:"metadata"`
}

// ApprovalSubmission sumisión completa de una corrida al workflow de aprobación.
type ApprovalSubmission struct {
	SubmissionID        string            `json:"submission_id"`
	SubmissionTimestamp time.Time         `json:"submission_timestamp"`
	ApprovalLevel       string            `json:"approval_level"`
	Approvers           []string          `json:"approvers"`
	TotalItems          int               `json:"total_items"`
	TransferItems       int               `json:"transfer_items"`
	PurchaseOrderItems  int               `json:"purchase_order_items"`
	TotalValue          decimal.Decimal   `json:"total_value"`
	Status              string            `json:"status"`
	AutoApproved        bool              `json:"auto_approved"`
	Records             []ApprovalRecord  `json:"approval_records"`
	Summary             AllocationSummary `json:"recommendations_summary"`
}

// CriticalRecordCount cantidad de registros con prioridad CRITICAL en la sumisión.
func (s ApprovalSubmission) CriticalRecordCount() int {
	n := 0
	for _, r := range s.Records {
		if r.Priority == PriorityLabelCritical {
			n++
		}
	}
	return n
}
