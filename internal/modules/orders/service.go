package orders

import (
	"context"
	"log/slog"
	"sync"
)

// Gateway is the storefront API surface the admin view consumes.
// Satisfied by *storefront.Client; narrow interface for testability.
type Gateway interface {
	ListOrders(ctx context.Context) ([]Order, error)
	GetClient(ctx context.Context, id int) (*Client, error)
	ListOrderItems(ctx context.Context, orderID int) ([]LineItem, error)
	ConfirmPayment(ctx context.Context, paymentID int) (*Payment, error)
	GetOrderDetail(ctx context.Context, orderID int) (*OrderDetail, error)
}

// Service owns the in-memory order list. Single writer: the list is
// replaced wholesale on Load and patched field-by-field by the resolver
// and the line-item backfill; every reader gets a snapshot copy.
type Service struct {
	gw       Gateway
	logger   *slog.Logger
	resolver *Resolver

	mu     sync.Mutex
	list   []Order
	gen    uint64 // bumped on every reload; stale async completions check it
	loaded bool
}

func NewService(gw Gateway, logger *slog.Logger) *Service {
	return &Service{
		gw:       gw,
		logger:   logger,
		resolver: NewResolver(gw, logger),
	}
}

// Load fetches the full order list and replaces the in-memory copy.
// Also the reload path after a successful mutation.
func (s *Service) Load(ctx context.Context) error {
	list, err := s.gw.ListOrders(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.list = list
	s.gen++
	s.loaded = true
	gen := s.gen
	s.mu.Unlock()

	s.resolver.Reset()
	s.logger.Info("order list loaded", slog.Int("count", len(list)), slog.Uint64("generation", gen))
	return nil
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Load(ctx)
}

// Generation returns the current render-pass token.
func (s *Service) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// snapshot copies the list so filtering and slicing never race the two
// mutation points.
func (s *Service) snapshot() ([]Order, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]Order, len(s.list))
	copy(cp, s.list)
	return cp, s.gen
}

// PageData is everything one render of the table needs.
type PageData struct {
	Rows       []Order
	Pagination Pagination
	Total      int // filtered count
	From, To   int // 1-based display range; zero when the page is empty
	Generation uint64
}

// Page runs one render pass: filter, clamp, slice, backfill the visible
// rows' product names, and schedule client-name lookups for rows still
// showing the loading placeholder.
func (s *Service) Page(ctx context.Context, crit Criteria, page int) (PageData, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return PageData{}, err
	}

	list, gen := s.snapshot()
	filtered := ApplyFilters(list, crit)
	totalPages := TotalPages(len(filtered), PageSize)
	page = ClampPage(page, totalPages)
	rows := PageSlice(filtered, page, PageSize)

	s.backfillItems(ctx, rows, gen)

	for _, o := range rows {
		s.resolver.Schedule(ctx, o, func(p RowPatch) { s.applyPatch(gen, p) })
	}

	pd := PageData{
		Rows:       rows,
		Pagination: BuildPagination(page, totalPages),
		Total:      len(filtered),
		Generation: gen,
	}
	if len(rows) > 0 {
		pd.From = (page-1)*PageSize + 1
		pd.To = pd.From + len(rows) - 1
	}
	return pd, nil
}

// backfillItems fetches line items for rows that don't have their
// product names yet. Each row is independent; completion order does not
// matter because every write lands on its own element. Results are
// memoized on the canonical list so a session never refetches an order.
func (s *Service) backfillItems(ctx context.Context, rows []Order, gen uint64) {
	var wg sync.WaitGroup
	for i := range rows {
		if rows[i].ItemsLoaded {
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// ListOrderItems degrades to an empty slice on failure,
			// which renders as "No hay productos".
			items, _ := s.gw.ListOrderItems(ctx, rows[i].ID)
			names := make([]string, 0, len(items))
			for _, it := range items {
				names = append(names, it.ProductName())
			}
			rows[i].ProductNames = names
			rows[i].ItemsLoaded = true
		}(i)
	}
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return // a reload won while we were fetching; drop the memo
	}
	for _, row := range rows {
		if !row.ItemsLoaded {
			continue
		}
		for i := range s.list {
			if s.list[i].ID == row.ID && !s.list[i].ItemsLoaded {
				s.list[i].ProductNames = row.ProductNames
				s.list[i].ItemsLoaded = true
			}
		}
	}
}

// applyPatch writes a resolved client name into the canonical list,
// unless a reload replaced the list since the lookup started.
func (s *Service) applyPatch(gen uint64, p RowPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		s.logger.Debug("discarding stale client resolution",
			slog.Int("pedido_id", p.OrderID),
			slog.Uint64("generation", gen),
		)
		return
	}
	for i := range s.list {
		if s.list[i].ID == p.OrderID {
			s.list[i].Cliente = &Client{ID: p.ClienteID, Nombre: p.Nombre}
			return
		}
	}
}

// ClientName reports the currently resolved display name for an order,
// read-only: the background lookup stays the only fetch per order.
// pending is true while the loading placeholder still applies.
func (s *Service) ClientName(orderID int) (name string, pending bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.list {
		if s.list[i].ID == orderID {
			n := DisplayName(s.list[i])
			return n, n == NameLoading, nil
		}
	}
	return "", false, ErrOrderNotFound
}

// ConfirmPayment runs the confirm flow: exactly one PATCH against the
// order's payment, then a full reload so every row reflects the new
// status. On failure nothing is reloaded.
func (s *Service) ConfirmPayment(ctx context.Context, orderID int) error {
	s.mu.Lock()
	var target *Order
	for i := range s.list {
		if s.list[i].ID == orderID {
			o := s.list[i]
			target = &o
			break
		}
	}
	s.mu.Unlock()

	if target == nil {
		return ErrOrderNotFound
	}
	if !target.CanConfirm() {
		return ErrNotConfirmable
	}

	if _, err := s.gw.ConfirmPayment(ctx, target.Pago.ID); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Detail fetches the full admin payload for one order and resolves the
// client record when only the ID came embedded (print and mail need
// name, email and phone).
func (s *Service) Detail(ctx context.Context, orderID int) (*OrderDetail, error) {
	d, err := s.gw.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if (d.Cliente == nil || d.Cliente.Nombre == "") && d.ClienteID != 0 {
		if cl, err := s.gw.GetClient(ctx, d.ClienteID); err == nil && cl != nil {
			d.Cliente = cl
		}
	}
	return d, nil
}
