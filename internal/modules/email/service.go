// Package email builds the outgoing mail content for the admin console:
// the mailto composition links on each row and the SMTP order summary.
package email

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Josue-Ribero/meraki-sub000/internal/mailer"
)

// OrderSummary is the slice of an order the mail bodies need, already
// formatted for display.
type OrderSummary struct {
	ID      int
	Fecha   string
	Cliente string
	Total   string
	Estado  string
}

// MailtoURL builds the mail-composition link for one order row. No
// network: activating it hands off to the admin's mail client.
func MailtoURL(to string, o OrderSummary) string {
	subject := fmt.Sprintf("Pedido #%d - Meraki", o.ID)
	body := fmt.Sprintf(
		"Pedido #%d\nFecha: %s\nCliente: %s\nTotal: %s\nEstado: %s\n",
		o.ID, o.Fecha, o.Cliente, o.Total, o.Estado,
	)

	// mailto wants %20, not '+', for spaces
	esc := func(s string) string {
		return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	}
	return "mailto:" + to + "?subject=" + esc(subject) + "&body=" + esc(body)
}

// SendOrderSummary mails the order summary to the client.
func SendOrderSummary(ctx context.Context, svc mailer.Service, from, fromName, to string, o OrderSummary) error {
	subject := fmt.Sprintf("Resumen de tu pedido #%d - Meraki", o.ID)

	textBody := fmt.Sprintf(
		"Hola %s,\n\nEste es el resumen de tu pedido #%d.\n\nFecha: %s\nTotal: %s\nEstado: %s\n\nGracias por comprar en Meraki.",
		o.Cliente, o.ID, o.Fecha, o.Total, o.Estado,
	)

	htmlBody := fmt.Sprintf(`
<html>
  <body style="font-family: sans-serif;">
    <h2>Resumen del Pedido #%d</h2>
    <p>Hola %s,</p>
    <p><strong>Fecha:</strong> %s</p>
    <p><strong>Total:</strong> %s</p>
    <p><strong>Estado:</strong> %s</p>
    <p>Gracias por comprar en Meraki.</p>
    <p>Meraki - Joyería Artesanal</p>
  </body>
</html>
`, o.ID, o.Cliente, o.Fecha, o.Total, o.Estado)

	return svc.Send(ctx, mailer.Email{
		From:     from,
		FromName: fromName,
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
}
