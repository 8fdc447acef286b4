package eventbus_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalia/almacen-api/internal/infrastructure/eventbus"
	"github.com/hospitalia/almacen-api/pkg/logger"
)

func TestBus_EntregaATodosLosSuscriptores(t *testing.T) {
	bus := eventbus.New(logger.Nop())

	recibido := make(chan string, 2)
	for i := 0; i < 2; i++ {
		bus.Subscribe("stock.changed", func(ctx context.Context, payload any) {
			recibido <- payload.(string)
		})
	}

	bus.Publish(context.Background(), "stock.changed", "hola")

	for i := 0; i < 2; i++ {
		select {
		case msg := <-recibido:
			assert.Equal(t, "hola", msg)
		case <-time.After(2 * time.Second):
			t.Fatal("el suscriptor no recibió el evento")
		}
	}
}

func TestBus_SinSuscriptoresNoFalla(t *testing.T) {
	bus := eventbus.New(logger.Nop())
	require.NotPanics(t, func() {
		bus.Publish(context.Background(), "topico.sin.nadie", 42)
	})
}

// Un tópico no entrega a suscriptores de otro.
func TestBus_AislamientoPorTopico(t *testing.T) {
	bus := eventbus.New(logger.Nop())

	otro := make(chan any, 1)
	bus.Subscribe("stock.low", func(ctx context.Context, payload any) {
		otro <- payload
	})

	bus.Publish(context.Background(), "stock.changed", "x")

	select {
	case <-otro:
		t.Fatal("el evento llegó a un tópico ajeno")
	case <-time.After(100 * time.Millisecond):
	}
}

// Un panic en un suscriptor se recupera y no impide la entrega a los demás.
func TestBus_RecuperaPanicDeSuscriptor(t *testing.T) {
	bus := eventbus.New(logger.Nop())

	bus.Subscribe("stock.changed", func(ctx context.Context, payload any) {
		panic("suscriptor roto")
	})
	sano := make(chan struct{}, 1)
	bus.Subscribe("stock.changed", func(ctx context.Context, payload any) {
		sano <- struct{}{}
	})

	bus.Publish(context.Background(), "stock.changed", nil)

	select {
	case <-sano:
	case <-time.After(2 * time.Second):
		t.Fatal("el suscriptor sano no recibió el evento")
	}
}

// Publish no espera a los suscriptores: un handler lento no bloquea al
// publicador.
func TestBus_PublishNoBloquea(t *testing.T) {
	bus := eventbus.New(logger.Nop())

	var wg sync.WaitGroup
	wg.Add(1)
	bloqueo := make(chan struct{})
	bus.Subscribe("stock.changed", func(ctx context.Context, payload any) {
		defer wg.Done()
		<-bloqueo
	})

	done := make(chan struct{})
	go func() {
		bus.Publish(context.Background(), "stock.changed", nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish se bloqueó esperando al suscriptor")
	}
	close(bloqueo)
	wg.Wait()
}

func TestBus_SuscripcionConcurrente(t *testing.T) {
	bus := eventbus.New(logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Subscribe("stock.changed", func(ctx context.Context, payload any) {})
			bus.Publish(context.Background(), "stock.changed", nil)
		}()
	}
	wg.Wait()
}
