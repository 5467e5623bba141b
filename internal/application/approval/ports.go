package approval

import (
	"context"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// Notifier entrega una notificación a sus destinatarios y devuelve el estado
// resultante: sent cuando el proveedor aceptó el envío, logged cuando el
// servicio de correo está deshabilitado y solo quedó registrada.
type Notifier interface {
	Send(ctx context.Context, n entity.Notification) (status string, err error)
}
