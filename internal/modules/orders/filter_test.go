package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cl(id int, nombre string) *Client { return &Client{ID: id, Nombre: nombre} }

func sampleOrders() []Order {
	return []Order{
		{ID: 1, Fecha: "2026-03-10T09:00:00", Estado: StatusPendiente, Cliente: cl(1, "Ana Torres"),
			Total: decimal.NewFromInt(120000), Pago: &Payment{ID: 41},
			ProductNames: []string{"Vela aromática"}, ItemsLoaded: true},
		{ID: 2, Fecha: "2026-03-09T15:30:00", Estado: StatusPagado, ClienteNombre: "Luis Pérez",
			Total:        decimal.NewFromInt(75000),
			ProductNames: []string{"Kit de jabones"}, ItemsLoaded: true},
		{ID: 3, Fecha: "2026-03-09T08:00:00", Estado: StatusCancelado, Cliente: cl(3, "Ana María"),
			Total:        decimal.NewFromInt(50000),
			ProductNames: []string{"Vela de soya"}, ItemsLoaded: true},
		{ID: 4, Fecha: "2026-02-28T12:00:00", Estado: StatusPendiente, ClienteID: 7,
			Total: decimal.NewFromInt(60000), Pago: &Payment{ID: 44}},
		{ID: 5, Fecha: "2026-02-27T10:00:00", Estado: StatusPorPagar, Cliente: cl(5, "Carla Gómez"),
			Total:        decimal.NewFromInt(95000),
			ProductNames: []string{}, ItemsLoaded: true},
		{ID: 6, Fecha: "2026-02-26T17:00:00", Estado: StatusPagado, Cliente: cl(1, "Ana Torres"),
			Total:        decimal.NewFromInt(30000),
			ProductNames: []string{"Vela aromática", "Tarjeta"}, ItemsLoaded: true},
		{ID: 7, Fecha: "2026-02-25T11:00:00", Estado: StatusPendiente,
			Total: decimal.NewFromInt(10000)},
	}
}

func ids(list []Order) []int {
	out := make([]int, 0, len(list))
	for _, o := range list {
		out = append(out, o.ID)
	}
	return out
}

func TestApplyFiltersEmptyCriteriaReturnsAll(t *testing.T) {
	list := sampleOrders()
	got := ApplyFilters(list, Criteria{})
	assert.Equal(t, ids(list), ids(got))

	got = ApplyFilters(list, Criteria{Estado: "Todos"})
	assert.Equal(t, ids(list), ids(got))
}

func TestApplyFiltersByStatusLabel(t *testing.T) {
	list := sampleOrders()

	assert.Equal(t, []int{1, 4, 7}, ids(ApplyFilters(list, Criteria{Estado: "Pendiente"})))
	assert.Equal(t, []int{2, 6}, ids(ApplyFilters(list, Criteria{Estado: "Pagado"})))
	assert.Equal(t, []int{5}, ids(ApplyFilters(list, Criteria{Estado: "Por pagar"})))
	assert.Empty(t, ids(ApplyFilters(list, Criteria{Estado: "Enviado"})),
		"unknown label matches nothing")
}

func TestApplyFiltersByDatePrefix(t *testing.T) {
	list := sampleOrders()

	assert.Equal(t, []int{1, 2, 3}, ids(ApplyFilters(list, Criteria{Fecha: "2026-03"})))
	assert.Equal(t, []int{2, 3}, ids(ApplyFilters(list, Criteria{Fecha: "2026-03-09"})))
	assert.Empty(t, ApplyFilters(list, Criteria{Fecha: "2025"}))
}

func TestApplyFiltersByClientSubstring(t *testing.T) {
	list := sampleOrders()

	// Matches embedded names, flat names, and is case-insensitive.
	assert.Equal(t, []int{1, 3, 6}, ids(ApplyFilters(list, Criteria{Cliente: "ana"})))
	assert.Equal(t, []int{2}, ids(ApplyFilters(list, Criteria{Cliente: "pérez"})))

	// Rows on a placeholder match the placeholder text, not a real name.
	assert.Equal(t, []int{4}, ids(ApplyFilters(list, Criteria{Cliente: "cargando"})))
	assert.Equal(t, []int{7}, ids(ApplyFilters(list, Criteria{Cliente: "no disponible"})))
}

func TestApplyFiltersByProduct(t *testing.T) {
	list := sampleOrders()

	assert.Equal(t, []int{1, 3, 6}, ids(ApplyFilters(list, Criteria{Producto: "vela"})))
	assert.Equal(t, []int{6}, ids(ApplyFilters(list, Criteria{Producto: "tarjeta"})))

	// Order 4 has no memoized names yet: it can never match an active
	// product criterion, whatever its real items are.
	assert.Empty(t, ApplyFilters(list, Criteria{Producto: "personalizada"}))
}

func TestApplyFiltersConjunction(t *testing.T) {
	list := sampleOrders()

	got := ApplyFilters(list, Criteria{Estado: "Pagado", Cliente: "ana"})
	assert.Equal(t, []int{6}, ids(got))

	got = ApplyFilters(list, Criteria{Estado: "Pendiente", Fecha: "2026-03", Cliente: "torres", Producto: "vela"})
	assert.Equal(t, []int{1}, ids(got))
}

func TestApplyFiltersPreservesOrderAndInput(t *testing.T) {
	list := sampleOrders()
	before := ids(list)

	got := ApplyFilters(list, Criteria{Estado: "Pendiente"})
	require.Equal(t, []int{1, 4, 7}, ids(got), "result keeps relative order")
	assert.Equal(t, before, ids(list), "input slice untouched")

	// Idempotent: filtering an already-filtered list is a no-op.
	again := ApplyFilters(got, Criteria{Estado: "Pendiente"})
	assert.Equal(t, ids(got), ids(again))
}

func TestStatusForLabel(t *testing.T) {
	for label, want := range map[string]Status{
		"Pendiente": StatusPendiente,
		"Pagado":    StatusPagado,
		"Cancelado": StatusCancelado,
		"Por pagar": StatusPorPagar,
	} {
		got, ok := StatusForLabel(label)
		require.True(t, ok, label)
		assert.Equal(t, want, got)
	}

	_, ok := StatusForLabel("PENDIENTE")
	assert.False(t, ok, "wire values are not display labels")
}

func TestCriteriaEmpty(t *testing.T) {
	assert.True(t, Criteria{}.Empty())
	assert.True(t, Criteria{Estado: "Todos"}.Empty())
	assert.False(t, Criteria{Fecha: "2026"}.Empty())
	assert.False(t, Criteria{Producto: "vela"}.Empty())
}
