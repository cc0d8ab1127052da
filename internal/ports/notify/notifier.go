package notify

import "context"

// Topics de cambio de datos. Un suscriptor (p.ej. un recomputador de
// caches o un dashboard) refresca lo que corresponda al recibirlos.
const (
	TopicLogs       = "logs"
	TopicActivities = "activities"
	TopicReminders  = "reminders"
)

// Notifier avisa que un conjunto de datos cambió tras un write confirmado.
// Es señalización best-effort: no devuelve error y nunca debe bloquear
// la respuesta del request que lo dispara.
type Notifier interface {
	DataChanged(ctx context.Context, topic string)
}

// Nop es el notifier por defecto cuando no hay webhook configurado.
type Nop struct{}

func (Nop) DataChanged(context.Context, string) {}
