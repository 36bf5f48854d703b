// Package notify envía el ticket de venta por correo: directo en segundo plano o
// encolado en Redis y consumido por un pool de workers.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"github.com/jhoicas/Nomina-api/internal/application/sales"
	"github.com/jhoicas/Nomina-api/pkg/config"
	"github.com/jordan-wright/email"
)

// TicketRenderer genera el PDF del ticket.
type TicketRenderer interface {
	RenderTicket(t sales.Ticket) ([]byte, error)
}

// TicketSender entrega un ticket a su destinatario.
type TicketSender interface {
	SendTicket(ctx context.Context, t sales.Ticket) error
}

// Transport entrega un correo ya armado.
type Transport func(e *email.Email) error

// Mailer envía el ticket por SMTP con el PDF adjunto.
type Mailer struct {
	cfg       config.SMTPConfig
	renderer  TicketRenderer
	transport Transport
}

var _ TicketSender = (*Mailer)(nil)

// NewMailer construye el mailer. Si transport es nil usa SMTP con PlainAuth.
func NewMailer(cfg config.SMTPConfig, renderer TicketRenderer, transport Transport) *Mailer {
	m := &Mailer{cfg: cfg, renderer: renderer, transport: transport}
	if m.transport == nil {
		m.transport = m.sendSMTP
	}
	return m
}

// SendTicket arma el correo del ticket y lo envía.
func (m *Mailer) SendTicket(_ context.Context, t sales.Ticket) error {
	if t.CustomerEmail == "" {
		return fmt.Errorf("mailer: ticket %s sin correo de destino", t.Folio)
	}
	content, err := m.renderer.RenderTicket(t)
	if err != nil {
		return fmt.Errorf("mailer: generar ticket: %w", err)
	}

	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = []string{t.CustomerEmail}
	e.Subject = "Tu ticket de compra " + t.Folio
	e.Text = []byte(fmt.Sprintf(
		"Gracias por tu compra.\n\nFolio: %s\nTotal: $%s\n\nAdjuntamos tu ticket en PDF.",
		t.Folio, t.Total.StringFixed(2),
	))
	if _, err := e.Attach(bytes.NewReader(content), "ticket-"+t.Folio+".pdf", "application/pdf"); err != nil {
		return fmt.Errorf("mailer: adjuntar PDF: %w", err)
	}
	if err := m.transport(e); err != nil {
		return fmt.Errorf("mailer: enviar a %s: %w", t.CustomerEmail, err)
	}
	return nil
}

func (m *Mailer) sendSMTP(e *email.Email) error {
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	return e.Send(m.cfg.Addr(), auth)
}
