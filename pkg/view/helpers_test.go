package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCOP(t *testing.T) {
	cases := map[string]string{
		"0":          "$ 0",
		"999":        "$ 999",
		"1000":       "$ 1.000",
		"45000":      "$ 45.000",
		"1234567":    "$ 1.234.567",
		"1234567.49": "$ 1.234.567",
		"1234567.5":  "$ 1.234.568",
		"-75000":     "-$ 75.000",
	}
	for in, want := range cases {
		d, err := decimal.NewFromString(in)
		assert.NoError(t, err)
		assert.Equal(t, want, FormatCOP(d), "input %s", in)
	}
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "10 de marzo de 2026", FormatLongDate("2026-03-10T09:00:00"))
	assert.Equal(t, "2 de enero de 2025", FormatLongDate("2025-01-02"))
	assert.Equal(t, "31 de diciembre de 2024", FormatLongDate("2024-12-31T23:59:59Z"))
	assert.Equal(t, "5 de julio de 2026", FormatLongDate("2026-07-05T08:30:00.123456"))

	assert.Equal(t, "Fecha no disponible", FormatLongDate(""))
	assert.Equal(t, "Fecha inválida", FormatLongDate("ayer"))
	assert.Equal(t, "Fecha inválida", FormatLongDate("10/03/2026"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pendiente", StatusLabel("PENDIENTE"))
	assert.Equal(t, "Pagado", StatusLabel("PAGADO"))
	assert.Equal(t, "Cancelado", StatusLabel("CANCELADO"))
	assert.Equal(t, "Por pagar", StatusLabel("POR_PAGAR"))
	assert.Equal(t, "Desconocido", StatusLabel(""))
	assert.Equal(t, "ENVIADO", StatusLabel("ENVIADO"), "unknown values pass through")
}

func TestStatusBadgeClass(t *testing.T) {
	assert.Equal(t, "badge-estado bg-pagado", StatusBadgeClass("PAGADO"))
	assert.Equal(t, "badge-estado bg-cancelado", StatusBadgeClass("CANCELADO"))
	assert.Equal(t, "badge-estado bg-por-pagar", StatusBadgeClass("POR_PAGAR"))
	assert.Equal(t, "badge-estado bg-pendiente", StatusBadgeClass("PENDIENTE"))
	assert.Equal(t, "badge-estado bg-pendiente", StatusBadgeClass("ENVIADO"))
}
