// Package approval somete el resultado de una corrida al workflow de
// aprobación por niveles y notifica a los interesados.
package approval

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
	"github.com/jhoicas/Optimizador-api/internal/domain/planning"
	"github.com/jhoicas/Optimizador-api/internal/domain/repository"
	"github.com/jhoicas/Optimizador-api/pkg/logger"
)

// Config parámetros de notificación del workflow.
type Config struct {
	ApproverDomain  string   // dominio de los correos de aprobadores: rol@dominio
	InventoryTeam   []string // siempre recibe el resumen de la corrida
	ExecutiveTeam   []string // recibe la alerta cuando hay items críticos
	DashboardAlerts bool     // crear alertas de dashboard para items críticos
}

// UseCase crea la sumisión de aprobación de una corrida y notifica a los
// interesados. La computación de la corrida ya ocurrió; aquí solo se persiste
// y se comunica.
type UseCase struct {
	approvalRepo repository.ApprovalRepository
	alertRepo    repository.AlertRepository
	notifier     Notifier
	planningCfg  planning.Config
	cfg          Config
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	approvalRepo repository.ApprovalRepository,
	alertRepo repository.AlertRepository,
	notifier Notifier,
	planningCfg planning.Config,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		approvalRepo: approvalRepo,
		alertRepo:    alertRepo,
		notifier:     notifier,
		planningCfg:  planningCfg,
		cfg:          cfg,
		log:          log,
	}
}

// Submit crea la sumisión: un registro por traslado y por orden de compra,
// todos al nivel de aprobación que corresponde al valor total de la corrida
// (costo de traslados + valor de órdenes). Corridas cuyo total no supera el
// umbral se auto-aprueban en bloque con aprobador "system".
//
// Una corrida sin registros queda en pending_approval aunque su valor (cero)
// no supere el umbral: solo se auto-aprueba lo que existe.
func (uc *UseCase) Submit(ctx context.Context, outcome entity.AllocationOutcome) (*entity.ApprovalSubmission, error) {
	now := time.Now().UTC()
	submissionID := "APPROVAL_" + now.Format("20060102_150405")

	totalValue := outcome.Summary.TransferCost.Add(outcome.Summary.PurchaseOrderValue)
	tier := planning.ResolveApprovalTier(uc.planningCfg.ApprovalTiers, totalValue)

	records := make([]entity.ApprovalRecord, 0, len(outcome.Transfers)+len(outcome.PurchaseOrders))
	for _, t := range outcome.Transfers {
		records = append(records, entity.ApprovalRecord{
			SubmissionID:  submissionID,
			ApprovalType:  entity.ApprovalTypeTransfer,
			ProductID:     t.ProductID,
			FromLocation:  t.FromLocationID,
			ToLocation:    t.ToLocationID,
			Quantity:      t.TransferQuantity,
			EstimatedCost: t.TransferCost,
			Priority:      t.Priority,
			ApprovalLevel: tier.Level,
			Status:        entity.ApprovalStatusPending,
			SubmittedAt:   now,
			Metadata: map[string]any{
				"cost_savings":   t.CostSavings,
				"reason":         t.Reason,
				"estimated_days": t.EstimatedTransferDays,
			},
		})
	}
	for _, po := range outcome.PurchaseOrders {
		records = append(records, entity.ApprovalRecord{
			SubmissionID:  submissionID,
			ApprovalType:  entity.ApprovalTypePurchaseOrder,
			ProductID:     po.ProductID,
			SupplierID:    po.SupplierID,
			Quantity:      po.RecommendedOrderQty,
			EstimatedCost: po.TotalOrderValue,
			Priority:      po.PriorityLabel,
			ApprovalLevel: tier.Level,
			Status:        entity.ApprovalStatusPending,
			SubmittedAt:   now,
			Metadata: map[string]any{
				"supplier_name":     po.SupplierName,
				"lead_time_days":    po.LeadTimeDays,
				"expected_delivery": po.ExpectedDeliveryDate,
				"current_stock":     po.CurrentStock,
				"reorder_point":     po.ReorderPoint,
			},
		})
	}

	if len(records) > 0 {
		if err := uc.approvalRepo.InsertRecords(ctx, records); err != nil {
			return nil, fmt.Errorf("aprobación: insertar cola: %w", err)
		}
	}

	autoApproved := false
	if !totalValue.GreaterThan(uc.planningCfg.AutoApproveThreshold) {
		if _, err := uc.approvalRepo.MarkAutoApproved(ctx, submissionID); err != nil {
			return nil, fmt.Errorf("aprobación: auto-aprobar: %w", err)
		}
		autoApproved = len(records) > 0
	}

	status := entity.SubmissionStatusPending
	if autoApproved {
		status = entity.SubmissionStatusAutoApproved
	}

	submission := &entity.ApprovalSubmission{
		SubmissionID:        submissionID,
		SubmissionTimestamp: now,
		ApprovalLevel:       tier.Level,
		Approvers:           tier.Approvers,
		TotalItems:          len(records),
		TransferItems:       len(outcome.Transfers),
		PurchaseOrderItems:  len(outcome.PurchaseOrders),
		TotalValue:          totalValue,
		Status:              status,
		AutoApproved:        autoApproved,
		Records:             records,
		Summary:             outcome.Summary,
	}

	uc.log.Info().
		Str("submission_id", submissionID).
		Str("estado", status).
		Str("nivel", tier.Level).
		Str("valor_total", totalValue.StringFixed(2)).
		Int("items", len(records)).
		Msg("sumisión de aprobación creada")

	return submission, nil
}

// Notify arma y envía las notificaciones de la sumisión: resumen al equipo de
// inventario siempre, solicitud de aprobación a cada aprobador cuando quedó
// pendiente, y alerta a los ejecutivos cuando hay items críticos.
//
// Los fallos de envío no son fatales: la sumisión ya quedó persistida, así que
// cada notificación fallida se degrada a warning y queda con estado failed.
func (uc *UseCase) Notify(ctx context.Context, submission *entity.ApprovalSubmission) (*entity.NotificationResult, error) {
	now := time.Now().UTC()

	type recipientGroup struct {
		role   string
		emails []string
		kind   string
	}

	groups := []recipientGroup{{
		role:   "inventory_team",
		emails: uc.cfg.InventoryTeam,
		kind:   entity.NotificationTypeSummary,
	}}

	if submission.Status == entity.SubmissionStatusPending {
		for _, approver := range submission.Approvers {
			groups = append(groups, recipientGroup{
				role:   approver,
				emails: []string{approver + "@" + uc.cfg.ApproverDomain},
				kind:   entity.NotificationTypeApprovalRequired,
			})
		}
	}

	criticalCount := submission.CriticalRecordCount()
	if criticalCount > 0 {
		groups = append(groups, recipientGroup{
			role:   "executives",
			emails: uc.cfg.ExecutiveTeam,
			kind:   entity.NotificationTypeCriticalAlert,
		})
	}

	sent := make([]entity.Notification, 0, len(groups))
	summary := entity.NotificationSummary{TotalRecipients: len(groups)}

	for _, g := range groups {
		n := entity.Notification{
			NotificationID:   submission.SubmissionID + "_" + g.role,
			RecipientRole:    g.role,
			RecipientEmails:  g.emails,
			NotificationType: g.kind,
			Subject:          notificationSubject(g.kind, submission),
			Body:             notificationBody(g.kind, submission, criticalCount),
			SentAt:           now,
		}

		status, err := uc.notifier.Send(ctx, n)
		if err != nil {
			uc.log.Warn().Err(err).
				Str("destinatario", g.role).
				Str("submission_id", submission.SubmissionID).
				Msg("fallo al enviar notificación")
			status = entity.NotificationStatusFailed
		}
		n.Status = status
		sent = append(sent, n)

		switch g.kind {
		case entity.NotificationTypeApprovalRequired:
			summary.ApprovalNotifications++
		case entity.NotificationTypeCriticalAlert:
			summary.AlertNotifications++
		default:
			summary.SummaryNotifications++
		}
	}

	if criticalCount > 0 && uc.cfg.DashboardAlerts {
		uc.createDashboardAlert(ctx, submission, now)
	}

	uc.log.Info().
		Str("submission_id", submission.SubmissionID).
		Int("notificaciones", len(sent)).
		Msg("interesados notificados")

	return &entity.NotificationResult{
		NotificationTimestamp: now,
		SubmissionID:          submission.SubmissionID,
		NotificationsSent:     len(sent),
		Details:               sent,
		Summary:               summary,
	}, nil
}

// createDashboardAlert registra la alerta de items críticos. Un fallo aquí no
// afecta el resultado del paso de notificación.
func (uc *UseCase) createDashboardAlert(ctx context.Context, submission *entity.ApprovalSubmission, now time.Time) {
	metadata, err := json.Marshal(submission.Summary)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo serializar el resumen para la alerta")
		return
	}

	alert := entity.DashboardAlert{
		AlertID:   "ALERT_" + submission.SubmissionID,
		AlertType: "critical_inventory",
		Severity:  "high",
		Message:   fmt.Sprintf("Critical inventory items in submission %s", submission.SubmissionID),
		CreatedAt: now,
		Status:    "active",
		Metadata:  string(metadata),
	}

	if err := uc.alertRepo.CreateAlert(ctx, alert); err != nil {
		uc.log.Warn().Err(err).
			Str("alert_id", alert.AlertID).
			Msg("no se pudo crear la alerta de dashboard")
		return
	}

	uc.log.Info().Str("alert_id", alert.AlertID).Msg("alerta de dashboard creada")
}
