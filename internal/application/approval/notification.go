package approval

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// notificationSubject asunto del correo según el tipo de notificación.
func notificationSubject(kind string, s *entity.ApprovalSubmission) string {
	switch kind {
	case entity.NotificationTypeApprovalRequired:
		return fmt.Sprintf("ACTION REQUIRED: Inventory Approval Request %s", s.SubmissionID)
	case entity.NotificationTypeCriticalAlert:
		return fmt.Sprintf("URGENT: Critical Inventory Items Require Attention - %s", s.SubmissionID)
	default:
		return fmt.Sprintf("Inventory Optimization Summary - %s", s.SubmissionID)
	}
}

// notificationBody cuerpo del correo según el tipo. El contenido va en inglés,
// como el resto de la comunicación corporativa.
func notificationBody(kind string, s *entity.ApprovalSubmission, criticalCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Inventory Optimization Pipeline Results
Submission ID: %s
Status: %s
Total Value: $%s

SUMMARY:
- Transfer Recommendations: %d
- Purchase Orders: %d
- Units via Transfer: %d
- Units via Purchase: %d
- Cost Savings from Transfers: $%s

`,
		s.SubmissionID, s.Status, formatMoney(s.TotalValue),
		s.Summary.TransfersRecommended, s.Summary.PurchaseOrdersRecommended,
		s.Summary.UnitsViaTransfer, s.Summary.UnitsViaPurchase,
		formatMoney(s.Summary.CostSavingsFromTransfers))

	if kind == entity.NotificationTypeApprovalRequired {
		fmt.Fprintf(&b, "\nACTION REQUIRED:\nPlease review and approve the recommendations in the approval dashboard.\nApproval Level: %s\n\n", s.ApprovalLevel)
	}
	if kind == entity.NotificationTypeCriticalAlert {
		fmt.Fprintf(&b, "\nCRITICAL ALERT:\n%d items are at critical stock levels and require immediate attention.\n\n", criticalCount)
	}

	b.WriteString("\nFor detailed information, please log in to the Inventory Management Dashboard.")

	return strings.TrimSpace(b.String())
}

// formatMoney formatea con separador de miles y dos decimales: 1234567.8
// queda "1,234,567.80".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var out strings.Builder
	pre := len(intPart) % 3
	if pre > 0 {
		out.WriteString(intPart[:pre])
	}
	for i := pre; i < len(intPart); i += 3 {
		if out.Len() > 0 {
			out.WriteByte(',')
		}
		out.WriteString(intPart[i : i+3])
	}

	if neg {
		return "-" + out.String() + "." + frac
	}
	return out.String() + "." + frac
}
