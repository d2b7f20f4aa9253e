// Package storefront is the HTTP client for the Meraki storefront API.
// Stateless: every call is an independent request carrying the bearer
// credential from config. All durable state lives behind this API.
package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/Josue-Ribero/meraki-sub000/internal/config"
	"github.com/Josue-Ribero/meraki-sub000/internal/modules/orders"
	"github.com/Josue-Ribero/meraki-sub000/internal/shared/apperr"
)

// upstreamError is a non-2xx response from the storefront, as opposed
// to a transport failure.
type upstreamError struct {
	method string
	path   string
	status int
	body   string
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.method, e.path, e.status, e.body)
}

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *slog.Logger
}

func New(cfg config.StorefrontConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// ListOrders fetches every order, most recent first.
func (c *Client) ListOrders(ctx context.Context) ([]orders.Order, error) {
	var list []orders.Order
	if err := c.get(ctx, "/pedidos/", &list); err != nil {
		return nil, err
	}
	// The API returns insertion order; the table wants newest on top.
	// Fecha is ISO, so the string ordering is the chronological one.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Fecha > list[j].Fecha
	})
	return list, nil
}

// GetClient fetches one client record. Any failure resolves to nil:
// an unresolved name is never fatal for the caller.
func (c *Client) GetClient(ctx context.Context, id int) (*orders.Client, error) {
	var cl orders.Client
	if err := c.get(ctx, fmt.Sprintf("/clientes/%d", id), &cl); err != nil {
		c.logger.Debug("client fetch failed", slog.Int("cliente_id", id), slog.Any("err", err))
		return nil, nil
	}
	return &cl, nil
}

// ListOrderItems fetches the line items of one order. Failures degrade
// to an empty slice and never propagate.
func (c *Client) ListOrderItems(ctx context.Context, orderID int) ([]orders.LineItem, error) {
	var items []orders.LineItem
	if err := c.get(ctx, fmt.Sprintf("/detallePedido/pedido/%d", orderID), &items); err != nil {
		c.logger.Debug("line item fetch failed", slog.Int("pedido_id", orderID), slog.Any("err", err))
		return []orders.LineItem{}, nil
	}
	return items, nil
}

// ConfirmPayment marks a payment confirmed. A non-success response is a
// confirm error carrying the upstream diagnostic; transport failures
// stay network errors.
func (c *Client) ConfirmPayment(ctx context.Context, paymentID int) (*orders.Payment, error) {
	var p orders.Payment
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/pagos/%d/confirmar", paymentID), &p); err != nil {
		var ue *upstreamError
		if errors.As(err, &ue) {
			return nil, &apperr.AppError{
				Kind:      apperr.Conflict,
				PublicMsg: "No se pudo confirmar el pago.",
				Err:       ue,
			}
		}
		return nil, err
	}
	return &p, nil
}

// GetOrderDetail fetches the admin payload with embedded line items.
func (c *Client) GetOrderDetail(ctx context.Context, orderID int) (*orders.OrderDetail, error) {
	var d orders.OrderDetail
	if err := c.get(ctx, fmt.Sprintf("/pedidos/admin/%d", orderID), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, out)
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return apperr.Wrap(err)
	}
	// Always a bearer header, even when the token is empty: whether an
	// empty credential is acceptable is the storefront's call.
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return apperr.UnavailableErr("No se pudo contactar la tienda.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return apperr.UnauthorizedErr("Sesión de administrador inválida.")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Non-2xx responses carry a diagnostic body; keep it for logs.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return apperr.UnavailableErr("La tienda respondió con un error.", &upstreamError{
			method: method,
			path:   path,
			status: resp.StatusCode,
			body:   strings.TrimSpace(string(body)),
		})
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.UnavailableErr("Respuesta inválida de la tienda.", err)
	}
	return nil
}
