package orders

import "github.com/shopspring/decimal"

// Status mirrors the storefront's estado enum on the wire.
type Status string

const (
	StatusPendiente Status = "PENDIENTE"
	StatusPagado    Status = "PAGADO"
	StatusCancelado Status = "CANCELADO"
	StatusPorPagar  Status = "POR_PAGAR"
)

// Display placeholders pinned by the UI (and its tests).
const (
	NameLoading        = "Cargando..."
	NameUnavailable    = "Cliente no disponible"
	ProductPlaceholder = "Producto personalizado"
	ProductNone        = "No hay productos"
)

// Client is the storefront's cliente record, embedded on orders or
// fetched on its own.
type Client struct {
	ID       int    `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email,omitempty"`
	Telefono string `json:"telefono,omitempty"`
}

// Payment is the embedded pago sub-record. Confirmado=false on a
// PENDIENTE order is what exposes the confirm action.
type Payment struct {
	ID         int  `json:"id"`
	Confirmado bool `json:"confirmado"`
}

// Order is one row of the admin table, exactly as the storefront sends
// it. Fecha stays a string: the date filter is a prefix match on the
// raw ISO value.
type Order struct {
	ID            int             `json:"id"`
	Fecha         string          `json:"fecha"`
	Total         decimal.Decimal `json:"total"`
	Estado        Status          `json:"estado"`
	Cliente       *Client         `json:"cliente,omitempty"`
	ClienteID     int             `json:"clienteID,omitempty"`
	ClienteNombre string          `json:"cliente_nombre,omitempty"`
	Pago          *Payment        `json:"pago,omitempty"`

	// Memoized by the line-item backfill; never sent by the API.
	ProductNames []string `json:"-"`
	ItemsLoaded  bool     `json:"-"`
}

// CanConfirm reports whether the confirm-payment action applies: an
// unconfirmed payment reference on a pending order, nothing else.
func (o Order) CanConfirm() bool {
	return o.Pago != nil && !o.Pago.Confirmado && o.Estado == StatusPendiente
}

type Product struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	ImagenURL string `json:"imagenURL,omitempty"`
}

// LineItem is one detallePedido entry.
type LineItem struct {
	ID              int             `json:"id"`
	Cantidad        int             `json:"cantidad"`
	PrecioUnidad    decimal.Decimal `json:"precioUnidad"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	EsPersonalizado bool            `json:"esPersonalizado"`
	Producto        *Product        `json:"producto,omitempty"`
	Diseno          *Product        `json:"disenoPersonalizado,omitempty"`
}

// ProductName resolves the display name of a line item: linked product,
// else custom design, else the custom-product placeholder.
func (li LineItem) ProductName() string {
	switch {
	case li.Producto != nil && li.Producto.Nombre != "":
		return li.Producto.Nombre
	case li.Diseno != nil && li.Diseno.Nombre != "":
		return li.Diseno.Nombre
	default:
		return ProductPlaceholder
	}
}

// OrderDetail is the admin detail payload with embedded line items,
// used by the print and mail documents.
type OrderDetail struct {
	Order
	Detalles []LineItem `json:"detalles"`
}
