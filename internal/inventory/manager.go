// Package inventory manages the menu behind the PIN gate. The gate is a
// UI convenience for the shared admin screen, not a security boundary:
// the PIN is compared locally and nothing is enforced server-side.
package inventory

import (
	"context"
	"errors"
	"sync"

	logrus "github.com/sirupsen/logrus"

	"fishyy_admin/internal/models"
)

// Gateway is the slice of the backend client the inventory needs.
// Product calls surface their errors, unlike the dashboard reads.
type Gateway interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, p models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

var (
	ErrLocked             = errors.New("Inventory is locked. Enter the PIN first.")
	ErrWrongPIN           = errors.New("Access Denied: Wrong PIN")
	ErrDeleteNotConfirmed = errors.New("Deletion not confirmed.")
)

// Manager holds the gate state and the current product list.
type Manager struct {
	gw  Gateway
	pin string
	log *logrus.Entry

	mu       sync.Mutex
	unlocked bool
	products []models.Product
}

// NewManager builds a locked manager guarding products behind pin.
func NewManager(gw Gateway, pin string) *Manager {
	return &Manager{
		gw:  gw,
		pin: pin,
		log: logrus.WithField("component", "inventory"),
	}
}

// Unlock compares the submitted PIN and, on a match, performs the first
// product fetch. A wrong PIN leaves the gate locked and fetches nothing;
// there is no lockout or rate limiting, matching the screen's behavior.
func (m *Manager) Unlock(ctx context.Context, pin string) error {
	if pin != m.pin {
		m.log.Warn("Inventory unlock rejected")
		return ErrWrongPIN
	}
	m.mu.Lock()
	m.unlocked = true
	m.mu.Unlock()
	m.reload(ctx)
	return nil
}

// Unlocked reports the gate state.
func (m *Manager) Unlocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unlocked
}

// Products returns the current menu snapshot, or ErrLocked.
func (m *Manager) Products() ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.unlocked {
		return nil, ErrLocked
	}
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

// Save creates the product when it has no id yet and updates it otherwise.
// A failure is returned as-is and leaves the current list untouched; a
// success triggers a full re-fetch.
func (m *Manager) Save(ctx context.Context, p models.Product) (models.Product, error) {
	if !m.Unlocked() {
		return models.Product{}, ErrLocked
	}
	var (
		saved models.Product
		err   error
	)
	if p.ID == "" {
		saved, err = m.gw.CreateProduct(ctx, p)
	} else {
		saved, err = m.gw.UpdateProduct(ctx, p.ID, p)
	}
	if err != nil {
		return models.Product{}, err
	}
	m.reload(ctx)
	return saved, nil
}

// Delete removes a product, but only once the caller has confirmed;
// without confirmation no backend call is made at all.
func (m *Manager) Delete(ctx context.Context, id string, confirmed bool) error {
	if !m.Unlocked() {
		return ErrLocked
	}
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if err := m.gw.DeleteProduct(ctx, id); err != nil {
		return err
	}
	m.reload(ctx)
	return nil
}

// reload replaces the product snapshot. A fetch failure keeps the old
// list; the mutation that triggered the reload has already been reported.
func (m *Manager) reload(ctx context.Context) {
	products, err := m.gw.ListProducts(ctx)
	if err != nil {
		m.log.WithError(err).Error("Fetching products failed; keeping previous list")
		return
	}
	m.mu.Lock()
	m.products = products
	m.mu.Unlock()
}
