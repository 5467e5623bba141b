package entity

import "time"

// Tipos de notificación a stakeholders.
const (
	NotificationTypeSummary          = "summary"
	NotificationTypeApprovalRequired = "approval_required"
	NotificationTypeCriticalAlert    = "critical_alert"
)

// Estados de envío de una notificación.
const (
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
	NotificationStatusLogged = "logged" // servicio de correo deshabilitado
)

// Notification correo generado para un grupo de destinatarios de una sumisión.
type Notification struct {
	NotificationID   string    `json:"notification_id"`
	RecipientRole    string    `json:"recipient_role"`
	RecipientEmails  []string  `json:"recipient_emails"`
	NotificationType string    `json:"notification_type"`
	Subject          string    `json:"subject"`
	Body             string    `json:"body"`
	SentAt           time.Time `json:"sent_at"`
	Status           string    `json:"status"`
}

// NotificationSummary conteos por tipo de notificación enviada.
type NotificationSummary struct {
	TotalRecipients       int `json:"total_recipients"`
	ApprovalNotifications int `json:"approval_notifications"`
	AlertNotifications    int `json:"alert_notifications"`
	SummaryNotifications  int `json:"summary_notifications"`
}

// NotificationResult resultado del paso de notificación de una sumisión.
type NotificationResult struct {
	NotificationTimestamp time.Time           `json:"notification_timestamp"`
	SubmissionID          string              `json:"submission_id"`
	NotificationsSent     int                 `json:"notifications_sent"`
	Details               []Notification      `json:"notification_details"`
	Summary               NotificationSummary `json:"summary"`
}

// DashboardAlert alerta para el dashboard de monitoreo cuando hay items críticos.
type DashboardAlert struct {
	AlertID   string    `json:"alert_id"`
	AlertType string    `json:"alert_type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
	Metadata  string    `json:"metadata"` // JSON del resumen de recomendaciones
}
