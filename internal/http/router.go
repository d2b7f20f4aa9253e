package http

import (
	"html/template"
	"log/slog"
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/Josue-Ribero/meraki-sub000/internal/config"
	"github.com/Josue-Ribero/meraki-sub000/internal/http/flash"
	"github.com/Josue-Ribero/meraki-sub000/internal/http/handlers/admin"
	"github.com/Josue-Ribero/meraki-sub000/internal/http/middleware"
	"github.com/Josue-Ribero/meraki-sub000/internal/mailer"
	"github.com/Josue-Ribero/meraki-sub000/internal/modules/orders"
)

const flashCookie = "meraki_flash"

// NewRouter wires the middleware chain and the admin order routes.
func NewRouter(logger *slog.Logger, cfg *config.Config, svc *orders.Service, mail mailer.Service) *gin.Engine {
	r := gin.New()

	codec := flash.NewCodec([]byte(cfg.FlashSecret), flashCookie, cfg.SecureCookies)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	// ErrorHandler renders after Recovery converts a panic into a
	// c.Errors entry, so it has to sit outside it in the chain.
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.FlashMiddleware(codec))

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	ordersHandler := admin.NewOrdersHandler(svc, mail, codec, cfg.SMTP.From, cfg.SMTP.FromName)
	ordersHandler.RegisterRoutes(r.Group("/admin"))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(nethttp.StatusFound, "/admin/pedidos")
	})

	return r
}
