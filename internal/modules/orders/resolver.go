package orders

import (
	"context"
	"log/slog"
	"sync"
)

// DisplayName resolves a client display string synchronously, in
// precedence order: embedded client name, flat cliente_nombre field,
// loading placeholder when only the ID is known, unavailable otherwise.
func DisplayName(o Order) string {
	if o.Cliente != nil && o.Cliente.Nombre != "" {
		return o.Cliente.Nombre
	}
	if o.ClienteNombre != "" {
		return o.ClienteNombre
	}
	if o.ClienteID != 0 {
		return NameLoading
	}
	return NameUnavailable
}

// NeedsResolution reports whether DisplayName returned the loading
// placeholder, i.e. a background lookup is worth scheduling.
func NeedsResolution(o Order) bool {
	return (o.Cliente == nil || o.Cliente.Nombre == "") && o.ClienteNombre == "" && o.ClienteID != 0
}

// ClientGetter is the slice of the gateway the resolver needs.
type ClientGetter interface {
	GetClient(ctx context.Context, id int) (*Client, error)
}

// RowPatch delivers a resolved name to whoever owns the rendered row.
// The resolver never touches presentation itself.
type RowPatch struct {
	OrderID   int
	ClienteID int
	Nombre    string
}

// Resolver fills in missing client names in the background. One lookup
// per order between Resets: a failed lookup is terminal, a resolved
// order never re-enters (its embedded name short-circuits DisplayName).
type Resolver struct {
	gw     ClientGetter
	logger *slog.Logger

	mu        sync.Mutex
	attempted map[int]struct{} // order IDs with a lookup in flight or finished
}

func NewResolver(gw ClientGetter, logger *slog.Logger) *Resolver {
	return &Resolver{
		gw:        gw,
		logger:    logger,
		attempted: make(map[int]struct{}),
	}
}

// Reset forgets attempted lookups. Called when the order list is
// replaced wholesale; the old entries' names died with the old list.
func (r *Resolver) Reset() {
	r.mu.Lock()
	r.attempted = make(map[int]struct{})
	r.mu.Unlock()
}

// Schedule starts at most one background lookup for the order and
// reports whether one was started. apply runs on success only; on
// failure the placeholder stays, no retry, no user-visible error.
func (r *Resolver) Schedule(ctx context.Context, o Order, apply func(RowPatch)) bool {
	if !NeedsResolution(o) {
		return false
	}

	r.mu.Lock()
	if _, dup := r.attempted[o.ID]; dup {
		r.mu.Unlock()
		return false
	}
	r.attempted[o.ID] = struct{}{}
	r.mu.Unlock()

	// The lookup outlives the render call that triggered it.
	ctx = context.WithoutCancel(ctx)

	go func() {
		cl, err := r.gw.GetClient(ctx, o.ClienteID)
		if err != nil || cl == nil || cl.Nombre == "" {
			r.logger.Debug("client lookup failed, placeholder stays",
				slog.Int("pedido_id", o.ID),
				slog.Int("cliente_id", o.ClienteID),
			)
			return
		}
		apply(RowPatch{OrderID: o.ID, ClienteID: o.ClienteID, Nombre: cl.Nombre})
	}()
	return true
}
