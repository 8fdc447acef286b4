package eventbus

import (
	"context"
	"sync"

	"github.com/hospitalia/almacen-api/internal/domain/event"
	"github.com/hospitalia/almacen-api/pkg/logger"
)

var _ event.Bus = (*Bus)(nil)

// Bus implementación en proceso del puerto event.Bus. Cada handler corre en
// su propia goroutine: el publicador no se bloquea ni observa fallos de los
// suscriptores. Un panic en un handler se recupera y se registra.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]event.Handler
	log      *logger.Logger
}

// New construye el bus.
func New(log *logger.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]event.Handler),
		log:      log,
	}
}

// Subscribe registra un handler para un tópico.
func (b *Bus) Subscribe(topic string, h event.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish entrega el payload a todos los suscriptores del tópico, cada uno en
// su goroutine (fire-and-forget).
func (b *Bus) Publish(ctx context.Context, topic string, payload any) {
	b.mu.RLock()
	subs := make([]event.Handler, len(b.handlers[topic]))
	copy(subs, b.handlers[topic])
	b.mu.RUnlock()

	for _, h := range subs {
		go b.dispatch(ctx, topic, h, payload)
	}
}

func (b *Bus) dispatch(ctx context.Context, topic string, h event.Handler, payload any) {
	defer func() {
		if rec := recover(); rec != nil {
			b.log.Error().Str("topic", topic).Any("panic", rec).Msg("panic en suscriptor del bus")
		}
	}()
	h(ctx, payload)
}
