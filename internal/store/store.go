// Package store holds the live dashboard snapshot. One poll loop per
// active view refreshes it from the backend; mutations apply optimistically
// and are reconciled by an unconditional re-fetch.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	logrus "github.com/sirupsen/logrus"

	"fishyy_admin/internal/lifecycle"
	"fishyy_admin/internal/models"
)

// Gateway is the slice of the backend client the store needs. Reads never
// fail (they fail to empty at the gateway); writes report success.
type Gateway interface {
	ListOrders(ctx context.Context) []models.Order
	ListDrivers(ctx context.Context) []models.Driver
	ListWithdrawals(ctx context.Context) []models.Withdrawal
	SetOrderStatus(ctx context.Context, orderID string, status models.Status) bool
	AssignDriver(ctx context.Context, orderID, driverID, driverName string) bool
}

// Validation and sync failures surfaced to the admin. The driver-selection
// messages keep the wording the dashboard has always shown.
var (
	ErrNoDriverSelected = errors.New("Please select a driver first!")
	ErrDriverNotFound   = errors.New("Error: Driver not found.")
	ErrNotAssignable    = errors.New("Order already has a driver or has left the kitchen.")
	ErrOrderNotFound    = errors.New("Order not found.")
	ErrBackendRejected  = errors.New("The backend rejected the update; showing its state after re-sync.")
)

// OfflineDriverError names the driver who went offline between selection
// and confirmation.
type OfflineDriverError struct {
	Name string
}

func (e *OfflineDriverError) Error() string {
	return fmt.Sprintf("STOP: %s has gone OFFLINE! Cannot assign.", e.Name)
}

// Store is the poll-driven snapshot plus the dashboard's local state:
// active view, search term and pending driver selections.
type Store struct {
	gw       Gateway
	interval time.Duration
	log      *logrus.Entry

	mu      sync.Mutex
	base    context.Context
	cancel  context.CancelFunc
	gen     int
	view    models.View
	search  string
	loading bool

	orders      []models.Order
	drivers     []models.Driver
	withdrawals []models.Withdrawal
	pending     map[string]string // order id -> tentatively chosen driver id
}

// New builds a store polling through gw every interval. The orders view is
// active initially, matching the dashboard's landing section.
func New(gw Gateway, interval time.Duration) *Store {
	return &Store{
		gw:       gw,
		interval: interval,
		log:      logrus.WithField("component", "store"),
		view:     models.ViewOrders,
		loading:  true,
		pending:  make(map[string]string),
	}
}

// Start begins polling for the initial view. ctx bounds the lifetime of
// every poll loop the store will ever start.
func (s *Store) Start(ctx context.Context) {
	s.mu.Lock()
	s.base = ctx
	gen, pollCtx := s.restartLocked()
	s.mu.Unlock()
	go s.poll(pollCtx, gen)
}

// SetView switches the active section: search resets, the previous poll
// loop is cancelled and a fresh one starts immediately.
func (s *Store) SetView(v models.View) error {
	if !v.Valid() {
		return fmt.Errorf("unknown view %q", v)
	}
	s.mu.Lock()
	if s.base == nil {
		s.mu.Unlock()
		return fmt.Errorf("store not started")
	}
	s.view = v
	s.search = ""
	gen, pollCtx := s.restartLocked()
	s.mu.Unlock()

	s.log.WithField("view", v).Info("Dashboard view changed")
	go s.poll(pollCtx, gen)
	return nil
}

// restartLocked invalidates the previous poll loop and hands out the
// context and generation for the next one. Caller holds s.mu.
func (s *Store) restartLocked() (int, context.Context) {
	if s.cancel != nil {
		s.cancel()
	}
	pollCtx, cancel := context.WithCancel(s.base)
	s.cancel = cancel
	s.gen++
	s.loading = true
	return s.gen, pollCtx
}

func (s *Store) poll(ctx context.Context, gen int) {
	s.refresh(ctx, gen)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx, gen)
		}
	}
}

// refresh fetches the roster plus the active view's collection and swaps
// the snapshots wholesale. A result fetched under a stale generation (the
// admin switched views mid-flight) is discarded, never applied.
func (s *Store) refresh(ctx context.Context, gen int) {
	s.mu.Lock()
	view := s.view
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	drivers := s.gw.ListDrivers(ctx)
	var orders []models.Order
	var withdrawals []models.Withdrawal
	switch view {
	case models.ViewOrders:
		orders = s.gw.ListOrders(ctx)
	case models.ViewPayouts:
		withdrawals = s.gw.ListWithdrawals(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return // stale response for an abandoned view
	}
	s.drivers = drivers
	switch view {
	case models.ViewOrders:
		s.orders = orders
	case models.ViewPayouts:
		s.withdrawals = withdrawals
	}
	s.loading = false
}

// Refresh re-syncs the current view once, outside the polling cadence.
// Used as the reconciliation step after every mutation.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()
	s.refresh(ctx, gen)
}

// SetSearch updates the search term for the active view.
func (s *Store) SetSearch(term string) {
	s.mu.Lock()
	s.search = term
	s.mu.Unlock()
}

// SelectDriver records (or clears, with an empty id) the tentative driver
// choice for an order. Nothing is sent to the backend until Assign.
func (s *Store) SelectDriver(orderID, driverID string) {
	s.mu.Lock()
	if driverID == "" {
		delete(s.pending, orderID)
	} else {
		s.pending[orderID] = driverID
	}
	s.mu.Unlock()
}

// ChangeStatus moves an order one step along the lifecycle: optimistic
// local apply, then the backend mutation, then an unconditional re-fetch.
// A rejected mutation is surfaced after the re-sync has already restored
// the backend's truth.
func (s *Store) ChangeStatus(ctx context.Context, orderID string, next models.Status) error {
	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrOrderNotFound
	}
	if err := lifecycle.Advance(&s.orders[idx], next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	ok := s.gw.SetOrderStatus(ctx, orderID, next)
	s.Refresh(ctx)
	if !ok {
		return ErrBackendRejected
	}
	return nil
}

// Assign commits the pending driver selection for an order. The roster is
// re-fetched fresh first: the poll cache is deliberately not trusted, so a
// driver who went offline after being picked is caught before the mutation.
func (s *Store) Assign(ctx context.Context, orderID string) (string, error) {
	s.mu.Lock()
	driverID := s.pending[orderID]
	var order models.Order
	found := false
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			order = s.orders[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return "", ErrOrderNotFound
	}
	if !lifecycle.CanAssign(order) {
		return "", ErrNotAssignable
	}
	if driverID == "" {
		return "", ErrNoDriverSelected
	}

	fresh := s.gw.ListDrivers(ctx)
	var driver *models.Driver
	for i := range fresh {
		if fresh[i].ID == driverID {
			driver = &fresh[i]
			break
		}
	}
	if driver == nil {
		return "", ErrDriverNotFound
	}
	if !driver.IsOnline {
		// Swap in the fresh roster so the board immediately shows the
		// driver as offline, then abort without touching the backend.
		s.mu.Lock()
		s.drivers = fresh
		s.mu.Unlock()
		return "", &OfflineDriverError{Name: driver.Name}
	}

	ok := s.gw.AssignDriver(ctx, orderID, driver.ID, driver.Name)
	s.Refresh(ctx)
	if !ok {
		return driver.Name, ErrBackendRejected
	}

	s.mu.Lock()
	delete(s.pending, orderID)
	s.mu.Unlock()
	s.log.WithFields(logrus.Fields{"order_id": orderID, "driver": driver.Name}).Info("Driver assigned")
	return driver.Name, nil
}

// --- Snapshot accessors (copies, safe to render from any goroutine) ---

func (s *Store) View() models.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Store) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Drivers() []models.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Driver, len(s.drivers))
	copy(out, s.drivers)
	return out
}

func (s *Store) Withdrawals() []models.Withdrawal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Withdrawal, len(s.withdrawals))
	copy(out, s.withdrawals)
	return out
}

// PendingFor returns the tentatively selected driver id for an order, or "".
func (s *Store) PendingFor(orderID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[orderID]
}
