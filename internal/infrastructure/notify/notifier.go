package notify

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Nomina-api/internal/application/sales"
	"github.com/rs/zerolog"
)

var (
	_ sales.Notifier = (*AsyncNotifier)(nil)
	_ sales.Notifier = NoopNotifier{}
)

// sendTimeout tiempo máximo de un envío en segundo plano.
const sendTimeout = 30 * time.Second

// AsyncNotifier envía el ticket en una goroutine sin bloquear la respuesta de la venta.
// Se usa cuando Redis no está configurado.
type AsyncNotifier struct {
	sender TicketSender
	log    zerolog.Logger
	wg     sync.WaitGroup
}

// NewAsyncNotifier construye el notificador.
func NewAsyncNotifier(sender TicketSender, log zerolog.Logger) *AsyncNotifier {
	return &AsyncNotifier{sender: sender, log: log}
}

// NotifySale lanza el envío y regresa de inmediato. Los errores solo se registran.
func (n *AsyncNotifier) NotifySale(_ context.Context, t sales.Ticket) error {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := n.sender.SendTicket(ctx, t); err != nil {
			n.log.Error().Err(err).Str("folio", t.Folio).Msg("no se pudo enviar el ticket")
			return
		}
		n.log.Info().Str("folio", t.Folio).Str("to", t.CustomerEmail).Msg("ticket enviado")
	}()
	return nil
}

// Wait espera los envíos en curso (apagado ordenado).
func (n *AsyncNotifier) Wait() {
	n.wg.Wait()
}

// NoopNotifier descarta los tickets cuando SMTP no está configurado.
type NoopNotifier struct {
	Log zerolog.Logger
}

// NotifySale solo deja constancia en el log.
func (n NoopNotifier) NotifySale(_ context.Context, t sales.Ticket) error {
	n.Log.Debug().Str("folio", t.Folio).Msg("SMTP deshabilitado: ticket no enviado")
	return nil
}
