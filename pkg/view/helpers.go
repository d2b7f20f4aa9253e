package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatCOP renders a Colombian-peso amount: zero decimals, dot
// grouping. E.g. 1234567 -> "$ 1.234.567".
func FormatCOP(amount decimal.Decimal) string {
	neg := amount.Sign() < 0
	digits := amount.Abs().Round(0).String()

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-$ " + b.String()
	}
	return "$ " + b.String()
}

// FormatLongDate renders an ISO timestamp in Spanish long form:
// "2 de enero de 2006". Absent and unparseable values get their own
// placeholders, matching the table's degraded rendering.
func FormatLongDate(iso string) string {
	if iso == "" {
		return "Fecha no disponible"
	}
	t, err := parseISO(iso)
	if err != nil {
		return "Fecha inválida"
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

func parseISO(iso string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", iso)
}

// StatusLabel translates the wire estado to its display form.
func StatusLabel(estado string) string {
	switch estado {
	case "PENDIENTE":
		return "Pendiente"
	case "PAGADO":
		return "Pagado"
	case "CANCELADO":
		return "Cancelado"
	case "POR_PAGAR":
		return "Por pagar"
	case "":
		return "Desconocido"
	default:
		return estado
	}
}

// StatusBadgeClass picks the badge class for a status. Unknown values
// fall back to the pending look.
func StatusBadgeClass(estado string) string {
	switch estado {
	case "PAGADO":
		return "badge-estado bg-pagado"
	case "CANCELADO":
		return "badge-estado bg-cancelado"
	case "POR_PAGAR":
		return "badge-estado bg-por-pagar"
	default:
		return "badge-estado bg-pendiente"
	}
}
