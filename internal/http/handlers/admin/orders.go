package admin

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Josue-Ribero/meraki-sub000/internal/http/flash"
	"github.com/Josue-Ribero/meraki-sub000/internal/http/middleware"
	"github.com/Josue-Ribero/meraki-sub000/internal/http/render"
	"github.com/Josue-Ribero/meraki-sub000/internal/http/validation"
	"github.com/Josue-Ribero/meraki-sub000/internal/mailer"
	"github.com/Josue-Ribero/meraki-sub000/internal/modules/email"
	"github.com/Josue-Ribero/meraki-sub000/internal/modules/orders"
	"github.com/Josue-Ribero/meraki-sub000/internal/shared/apperr"
	"github.com/Josue-Ribero/meraki-sub000/pkg/view"
)

const listPath = "/admin/pedidos"

type OrdersHandler struct {
	svc      *orders.Service
	mail     mailer.Service
	codec    *flash.Codec
	from     string
	fromName string
}

func NewOrdersHandler(svc *orders.Service, mail mailer.Service, codec *flash.Codec, from, fromName string) *OrdersHandler {
	return &OrdersHandler{svc: svc, mail: mail, codec: codec, from: from, fromName: fromName}
}

func (h *OrdersHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/pedidos", h.List)
	g.POST("/pedidos/:id/confirmar", h.Confirm)
	g.GET("/pedidos/:id/imprimir", h.Print)
	g.GET("/pedidos/:id/cliente", h.ClientName)
	g.POST("/pedidos/:id/enviar-correo", h.SendMail)
}

type filterQuery struct {
	Estado   string `form:"estado" binding:"omitempty,oneof=Todos Pendiente Pagado Cancelado 'Por pagar'"`
	Fecha    string `form:"fecha" binding:"omitempty,datetime=2006-01-02"`
	Cliente  string `form:"cliente" binding:"omitempty,max=100"`
	Producto string `form:"producto" binding:"omitempty,max=100"`
	Pagina   int    `form:"pagina" binding:"omitempty,min=1"`
}

func (h *OrdersHandler) List(c *gin.Context) {
	var q filterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fields := validation.FromBindError(err, &q)
		middleware.Fail(c, apperr.InvalidErr("Filtros inválidos.", fields))
		return
	}

	crit := orders.Criteria{
		Estado:   q.Estado,
		Fecha:    q.Fecha,
		Cliente:  q.Cliente,
		Producto: q.Producto,
	}
	page := q.Pagina
	if page < 1 {
		page = 1
	}

	pd, err := h.svc.Page(c.Request.Context(), crit, page)
	if err != nil {
		// A failed list load is terminal for this render pass.
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	vm := view.AdminOrdersPage{
		Filters: view.AdminOrderFilters{
			Estado:   q.Estado,
			Fecha:    q.Fecha,
			Cliente:  q.Cliente,
			Producto: q.Producto,
		},
		Pagination: pagination(pd.Pagination, crit),
		Flash:      middleware.GetFlash(c),
	}

	vm.Rows = make([]view.AdminOrderRow, 0, len(pd.Rows))
	for _, o := range pd.Rows {
		vm.Rows = append(vm.Rows, buildRow(o))
	}

	if len(pd.Rows) == 0 {
		vm.Empty = true
		if crit.Empty() {
			vm.EmptyMsg = "No hay pedidos registrados"
		} else {
			vm.EmptyMsg = "No se encontraron pedidos con los filtros aplicados"
		}
	} else {
		vm.Info = "Mostrando " + strconv.Itoa(pd.From) + "-" + strconv.Itoa(pd.To) +
			" de " + strconv.Itoa(pd.Total) + " pedidos"
	}

	c.HTML(http.StatusOK, "admin_orders.html", vm)
}

func buildRow(o orders.Order) view.AdminOrderRow {
	nombre := orders.DisplayName(o)
	fecha := view.FormatLongDate(o.Fecha)
	total := view.FormatCOP(o.Total)
	estado := string(o.Estado)

	producto := orders.ProductNone
	if len(o.ProductNames) > 0 {
		producto = o.ProductNames[0]
	}

	return view.AdminOrderRow{
		ID:             o.ID,
		Fecha:          fecha,
		Total:          total,
		Cliente:        nombre,
		ClientePending: nombre == orders.NameLoading,
		Producto:       producto,
		EstadoLabel:    view.StatusLabel(estado),
		EstadoClass:    view.StatusBadgeClass(estado),
		ShowConfirm:    o.CanConfirm(),
		MailtoURL: email.MailtoURL("", email.OrderSummary{
			ID:      o.ID,
			Fecha:   fecha,
			Cliente: nombre,
			Total:   total,
			Estado:  view.StatusLabel(estado),
		}),
	}
}

// pagination carries the filter state into the page links so that
// switching pages re-renders the table only.
func pagination(p orders.Pagination, crit orders.Criteria) view.Pagination {
	q := url.Values{}
	if crit.Estado != "" {
		q.Set("estado", crit.Estado)
	}
	if crit.Fecha != "" {
		q.Set("fecha", crit.Fecha)
	}
	if crit.Cliente != "" {
		q.Set("cliente", crit.Cliente)
	}
	if crit.Producto != "" {
		q.Set("producto", crit.Producto)
	}

	out := view.Pagination{
		Current:      p.Current,
		Total:        p.Total,
		PrevDisabled: p.PrevDisabled,
		NextDisabled: p.NextDisabled,
		Query:        q.Encode(),
	}
	out.Buttons = make([]view.PageButton, 0, len(p.Buttons))
	for _, b := range p.Buttons {
		out.Buttons = append(out.Buttons, view.PageButton{Number: b.Number, Active: b.Active})
	}
	return out
}

func (h *OrdersHandler) Confirm(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	err := h.svc.ConfirmPayment(c.Request.Context(), id)
	switch {
	case err == nil:
		render.RedirectWithFlash(c, h.codec, listPath, view.FlashSuccess, "Pago confirmado exitosamente")
	case errors.Is(err, orders.ErrOrderNotFound):
		render.RedirectWithFlash(c, h.codec, listPath, view.FlashError, "Pedido no encontrado")
	case errors.Is(err, orders.ErrNotConfirmable):
		render.RedirectWithFlash(c, h.codec, listPath, view.FlashError, "El pedido no tiene un pago pendiente por confirmar")
	default:
		render.RedirectWithFlash(c, h.codec, listPath, view.FlashError,
			"Error al confirmar el pago: "+apperr.PublicMessage(err))
	}
}

func (h *OrdersHandler) Print(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	d, err := h.svc.Detail(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	vm := view.AdminOrderPrint{
		ID:          d.ID,
		Fecha:       view.FormatLongDate(d.Fecha),
		EstadoLabel: view.StatusLabel(string(d.Estado)),
		Total:       view.FormatCOP(d.Total),

		ClienteNombre:   orders.NameUnavailable,
		ClienteEmail:    "No disponible",
		ClienteTelefono: "No disponible",

		GeneradoEl: view.FormatLongDate(time.Now().Format(time.RFC3339)),
	}
	if d.Cliente != nil {
		if d.Cliente.Nombre != "" {
			vm.ClienteNombre = d.Cliente.Nombre
		}
		if d.Cliente.Email != "" {
			vm.ClienteEmail = d.Cliente.Email
		}
		if d.Cliente.Telefono != "" {
			vm.ClienteTelefono = d.Cliente.Telefono
		}
	}

	vm.Items = make([]view.AdminOrderPrintItem, 0, len(d.Detalles))
	for _, it := range d.Detalles {
		item := view.AdminOrderPrintItem{
			Producto:      it.ProductName(),
			Personalizado: it.EsPersonalizado,
			Cantidad:      it.Cantidad,
			PrecioUnidad:  view.FormatCOP(it.PrecioUnidad),
			Subtotal:      view.FormatCOP(it.Subtotal),
		}
		if it.Producto != nil {
			item.ImagenURL = it.Producto.ImagenURL
		} else if it.Diseno != nil {
			item.ImagenURL = it.Diseno.ImagenURL
		}
		vm.Items = append(vm.Items, item)
	}

	c.HTML(http.StatusOK, "order_print.html", vm)
}

// ClientName serves the tiny JSON lookup the table script polls to
// patch a "Cargando..." cell once the background resolution lands.
func (h *OrdersHandler) ClientName(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	name, pending, err := h.svc.ClientName(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pedido no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nombre": name, "pendiente": pending})
}

func (h *OrdersHandler) SendMail(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	d, err := h.svc.Detail(c.Request.Context(), id)
	if err != nil {
		render.RedirectWithFlash(c, h.codec, listPath, view.FlashError,
			"Error al obtener el pedido: "+apperr.PublicMessage(err))
		return
	}
	if d.Cliente == nil || d.Cliente.Email == "" {
		render.RedirectWithFlash(c, h.codec, listPath, view.FlashWarning, "El cliente no tiene correo registrado")
		return
	}

	summary := email.OrderSummary{
		ID:      d.ID,
		Fecha:   view.FormatLongDate(d.Fecha),
		Cliente: orders.DisplayName(d.Order),
		Total:   view.FormatCOP(d.Total),
		Estado:  view.StatusLabel(string(d.Estado)),
	}
	if err := email.SendOrderSummary(c.Request.Context(), h.mail, h.from, h.fromName, d.Cliente.Email, summary); err != nil {
		render.RedirectWithFlash(c, h.codec, listPath, view.FlashError, "No se pudo enviar el correo")
		return
	}
	render.RedirectWithFlash(c, h.codec, listPath, view.FlashSuccess, "Resumen enviado a "+d.Cliente.Email)
}

func orderID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		middleware.Fail(c, apperr.InvalidErr("Identificador de pedido inválido.", nil))
		return 0, false
	}
	return id, true
}
