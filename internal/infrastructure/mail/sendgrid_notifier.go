// Package mail implementa el notificador sobre SendGrid. Con el servicio
// deshabilitado (sin API key o apagado por config) las notificaciones se
// registran en el log y la corrida continúa normal.
package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jhoicas/Optimizador-api/internal/application/approval"
	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
	"github.com/jhoicas/Optimizador-api/pkg/config"
	"github.com/jhoicas/Optimizador-api/pkg/logger"
)

var _ approval.Notifier = (*SendGridNotifier)(nil)

// SendGridNotifier envía cada notificación como un correo con todos los
// destinatarios del grupo en el mismo To.
type SendGridNotifier struct {
	cfg config.MailConfig
	log *logger.Logger
}

// NewSendGridNotifier construye el notificador.
func NewSendGridNotifier(cfg config.MailConfig, log *logger.Logger) *SendGridNotifier {
	return &SendGridNotifier{cfg: cfg, log: log}
}

// Send entrega la notificación. Devuelve "sent" cuando SendGrid la aceptó y
// "logged" cuando el servicio está deshabilitado y solo quedó en el log.
func (s *SendGridNotifier) Send(ctx context.Context, n entity.Notification) (string, error) {
	if !s.cfg.Enabled || s.cfg.APIKey == "" {
		s.log.Info().
			Str("notification_id", n.NotificationID).
			Str("destinatario", n.RecipientRole).
			Str("asunto", n.Subject).
			Int("correos", len(n.RecipientEmails)).
			Msg("servicio de correo deshabilitado; notificación solo registrada")
		return entity.NotificationStatusLogged, nil
	}

	message := sgmail.NewV3Mail()
	message.SetFrom(sgmail.NewEmail(s.cfg.FromName, s.cfg.FromAddress))
	message.Subject = n.Subject

	personalization := sgmail.NewPersonalization()
	for _, addr := range n.RecipientEmails {
		personalization.AddTos(sgmail.NewEmail("", addr))
	}
	message.AddPersonalizations(personalization)
	message.AddContent(sgmail.NewContent("text/plain", n.Body))

	client := sendgrid.NewSendClient(s.cfg.APIKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return "", fmt.Errorf("sendgrid: %w", err)
	}
	if response.StatusCode >= 400 {
		return "", fmt.Errorf("sendgrid: status %d: %s", response.StatusCode, response.Body)
	}

	s.log.Info().
		Str("notification_id", n.NotificationID).
		Str("destinatario", n.RecipientRole).
		Int("status", response.StatusCode).
		Msg("notificación enviada")
	return entity.NotificationStatusSent, nil
}
