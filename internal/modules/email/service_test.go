package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Josue-Ribero/meraki-sub000/internal/mailer"
)

func summary() OrderSummary {
	return OrderSummary{
		ID:      12,
		Fecha:   "10 de marzo de 2026",
		Cliente: "Ana Torres",
		Total:   "$ 120.000",
		Estado:  "Pendiente",
	}
}

func TestMailtoURL(t *testing.T) {
	got := MailtoURL("ana@example.com", summary())

	assert.Contains(t, got, "mailto:ana@example.com?subject=")
	assert.Contains(t, got, "Pedido%20%2312") // "#" must be escaped inside the subject
	assert.Contains(t, got, "&body=")
	assert.Contains(t, got, "Ana%20Torres")
	assert.NotContains(t, got, "+", "mailto bodies use %20 for spaces, never '+'")
}

func TestSendOrderSummary(t *testing.T) {
	mock := &mailer.Mock{}
	err := SendOrderSummary(context.Background(), mock, "pedidos@meraki.co", "Meraki", "ana@example.com", summary())
	require.NoError(t, err)

	require.Len(t, mock.Sent, 1)
	msg := mock.Sent[0]
	assert.Equal(t, "pedidos@meraki.co", msg.From)
	assert.Equal(t, []string{"ana@example.com"}, msg.To)
	assert.Equal(t, "Resumen de tu pedido #12 - Meraki", msg.Subject)
	assert.Contains(t, msg.TextBody, "Hola Ana Torres")
	assert.Contains(t, msg.TextBody, "Total: $ 120.000")
	assert.Contains(t, msg.HTMLBody, "Resumen del Pedido #12")
}
