package view

type AdminOrderRow struct {
	ID     int
	Fecha  string // long-form display date
	Total  string // formatted COP

	Cliente        string // resolved display name or placeholder
	ClientePending bool   // true while the loading placeholder shows

	Producto string // representative product name

	EstadoLabel string
	EstadoClass string

	ShowConfirm bool
	MailtoURL   string
}

type AdminOrderFilters struct {
	Estado   string
	Fecha    string
	Cliente  string
	Producto string
}

type PageButton struct {
	Number int
	Active bool
}

type Pagination struct {
	Current      int
	Total        int
	PrevDisabled bool
	NextDisabled bool
	Buttons      []PageButton
	// Query is the encoded filter state the page links must carry so
	// switching pages re-renders the table only, not the filters.
	Query string
}

type AdminOrdersPage struct {
	Rows       []AdminOrderRow
	Filters    AdminOrderFilters
	Pagination Pagination
	Info       string // "Mostrando 1-5 de 12 pedidos"
	Empty      bool
	EmptyMsg   string
	Flash      *Flash
}

type AdminOrderPrintItem struct {
	Producto      string
	ImagenURL     string
	Personalizado bool
	Cantidad      int
	PrecioUnidad  string
	Subtotal      string
}

// AdminOrderPrint is the standalone printable document.
type AdminOrderPrint struct {
	ID          int
	Fecha       string
	EstadoLabel string
	Total       string

	ClienteNombre   string
	ClienteEmail    string
	ClienteTelefono string

	Items     []AdminOrderPrintItem
	GeneradoEl string
}
