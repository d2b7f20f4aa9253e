// Command mockapi is a local stand-in for the Meraki storefront API.
// It serves just enough of the order endpoints for the admin panel to
// run without the real backend:
//
//	go run ./cmd/tools/mockapi
//	STOREFRONT_API_URL=http://localhost:9090 go run ./cmd/web
package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Josue-Ribero/meraki-sub000/internal/modules/orders"
)

type store struct {
	mu      sync.Mutex
	orders  []orders.Order
	clients map[int]orders.Client
	items   map[int][]orders.LineItem
}

func seed() *store {
	cop := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	s := &store{
		clients: map[int]orders.Client{
			1: {ID: 1, Nombre: "Ana Torres", Email: "ana@example.com", Telefono: "3001234567"},
			2: {ID: 2, Nombre: "Luis Pérez", Email: "luis@example.com"},
			3: {ID: 3, Nombre: "Carla Gómez"},
		},
		items: map[int][]orders.LineItem{
			1: {
				{ID: 10, Cantidad: 2, PrecioUnidad: cop(45000), Subtotal: cop(90000),
					Producto: &orders.Product{ID: 100, Nombre: "Vela aromática lavanda"}},
				{ID: 11, Cantidad: 1, PrecioUnidad: cop(30000), Subtotal: cop(30000),
					EsPersonalizado: true,
					Diseno:          &orders.Product{ID: 200, Nombre: "Caja personalizada"}},
			},
			2: {
				{ID: 12, Cantidad: 1, PrecioUnidad: cop(75000), Subtotal: cop(75000),
					Producto: &orders.Product{ID: 101, Nombre: "Kit de jabones"}},
			},
			4: {
				{ID: 13, Cantidad: 3, PrecioUnidad: cop(20000), Subtotal: cop(60000),
					EsPersonalizado: true},
			},
		},
	}

	pago := func(id int, confirmado bool) *orders.Payment {
		return &orders.Payment{ID: id, Confirmado: confirmado}
	}
	s.orders = []orders.Order{
		{ID: 1, Fecha: "2026-08-30T14:05:00", Total: cop(120000), Estado: orders.StatusPendiente,
			Cliente: &orders.Client{ID: 1, Nombre: "Ana Torres", Email: "ana@example.com"},
			Pago:    pago(41, false)},
		{ID: 2, Fecha: "2026-08-29T10:30:00", Total: cop(75000), Estado: orders.StatusPagado,
			ClienteID: 2, Pago: pago(42, true)},
		{ID: 3, Fecha: "2026-08-28T09:00:00", Total: cop(50000), Estado: orders.StatusCancelado,
			ClienteNombre: "Carla Gómez"},
		{ID: 4, Fecha: "2026-08-27T18:45:00", Total: cop(60000), Estado: orders.StatusPorPagar,
			ClienteID: 3},
		{ID: 5, Fecha: "2026-08-26T12:00:00", Total: cop(95000), Estado: orders.StatusPendiente,
			ClienteID: 99, Pago: pago(45, false)},
	}
	return s
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	data := seed()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/pedidos/", func(c *gin.Context) {
		data.mu.Lock()
		defer data.mu.Unlock()
		c.JSON(http.StatusOK, data.orders)
	})

	r.GET("/clientes/:id", func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		data.mu.Lock()
		defer data.mu.Unlock()
		cl, ok := data.clients[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "cliente no encontrado"})
			return
		}
		c.JSON(http.StatusOK, cl)
	})

	r.GET("/detallePedido/pedido/:id", func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		data.mu.Lock()
		defer data.mu.Unlock()
		items, ok := data.items[id]
		if !ok {
			items = []orders.LineItem{}
		}
		c.JSON(http.StatusOK, items)
	})

	r.PATCH("/pagos/:id/confirmar", func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		data.mu.Lock()
		defer data.mu.Unlock()
		for i := range data.orders {
			p := data.orders[i].Pago
			if p == nil || p.ID != id {
				continue
			}
			if p.Confirmado {
				c.JSON(http.StatusConflict, gin.H{"error": "el pago ya fue confirmado"})
				return
			}
			p.Confirmado = true
			data.orders[i].Estado = orders.StatusPagado
			c.JSON(http.StatusOK, p)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "pago no encontrado"})
	})

	r.GET("/pedidos/admin/:id", func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		data.mu.Lock()
		defer data.mu.Unlock()
		for _, o := range data.orders {
			if o.ID != id {
				continue
			}
			c.JSON(http.StatusOK, orders.OrderDetail{Order: o, Detalles: data.items[id]})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "pedido no encontrado"})
	})

	addr := os.Getenv("MOCKAPI_ADDR")
	if addr == "" {
		addr = ":9090"
	}
	logger.Info("mockapi listening", slog.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Error("mockapi stopped", slog.Any("err", err))
		os.Exit(1)
	}
}
