package orders

import "strings"

// Criteria carries the four filter controls. Empty fields are
// always-true predicates.
type Criteria struct {
	Estado   string // display label: "Pendiente", "Pagado", "Cancelado", "Por pagar" ("Todos"/"" = any)
	Fecha    string // prefix of the order's raw ISO date, e.g. "2025-03"
	Cliente  string // case-insensitive substring of the resolved client name
	Producto string // case-insensitive substring of the memoized product names
}

func (c Criteria) Empty() bool {
	return (c.Estado == "" || c.Estado == "Todos") && c.Fecha == "" && c.Cliente == "" && c.Producto == ""
}

// StatusForLabel maps the filter control's display value onto the wire
// enum. Unrecognized labels return ok=false and must match nothing.
func StatusForLabel(label string) (Status, bool) {
	switch label {
	case "Pendiente":
		return StatusPendiente, true
	case "Pagado":
		return StatusPagado, true
	case "Cancelado":
		return StatusCancelado, true
	case "Por pagar":
		return StatusPorPagar, true
	default:
		return "", false
	}
}

// ApplyFilters reduces the order list to those satisfying every active
// criterion. Pure: input order preserved, input slice untouched.
func ApplyFilters(list []Order, c Criteria) []Order {
	out := make([]Order, 0, len(list))
	for _, o := range list {
		if matches(o, c) {
			out = append(out, o)
		}
	}
	return out
}

func matches(o Order, c Criteria) bool {
	if c.Estado != "" && c.Estado != "Todos" {
		want, ok := StatusForLabel(c.Estado)
		if !ok || o.Estado != want {
			return false
		}
	}
	if c.Fecha != "" && !strings.HasPrefix(o.Fecha, c.Fecha) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(c.Cliente)); q != "" {
		if !strings.Contains(strings.ToLower(DisplayName(o)), q) {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(c.Producto)); q != "" {
		if !productMatch(o, q) {
			return false
		}
	}
	return true
}

// productMatch checks the memoized product names. An order whose names
// are not loaded yet cannot match an active product criterion; the next
// render after the backfill picks it up.
func productMatch(o Order, q string) bool {
	if !o.ItemsLoaded {
		return false
	}
	for _, name := range o.ProductNames {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	return false
}
