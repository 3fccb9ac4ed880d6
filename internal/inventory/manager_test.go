package inventory

import (
	"context"
	"errors"
	"testing"

	"fishyy_admin/internal/models"
)

type fakeProductGateway struct {
	products []models.Product

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	fail error
}

func (f *fakeProductGateway) ListProducts(context.Context) ([]models.Product, error) {
	f.listCalls++
	if f.fail != nil {
		return nil, f.fail
	}
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProductGateway) CreateProduct(_ context.Context, p models.Product) (models.Product, error) {
	f.createCalls++
	if f.fail != nil {
		return models.Product{}, f.fail
	}
	p.ID = "p1"
	f.products = append(f.products, p)
	return p, nil
}

func (f *fakeProductGateway) UpdateProduct(_ context.Context, id string, p models.Product) (models.Product, error) {
	f.updateCalls++
	if f.fail != nil {
		return models.Product{}, f.fail
	}
	for i := range f.products {
		if f.products[i].ID == id {
			p.ID = id
			f.products[i] = p
		}
	}
	return p, nil
}

func (f *fakeProductGateway) DeleteProduct(_ context.Context, id string) error {
	f.deleteCalls++
	if f.fail != nil {
		return f.fail
	}
	kept := f.products[:0]
	for _, p := range f.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.products = kept
	return nil
}

func TestUnlockWithCorrectPIN(t *testing.T) {
	fake := &fakeProductGateway{products: []models.Product{{ID: "p1", Name: "Seer Fish", Category: "Fish", Price: 650}}}
	m := NewManager(fake, "9999")

	if err := m.Unlock(context.Background(), "9999"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if fake.listCalls != 1 {
		t.Fatalf("unlock must trigger exactly one product fetch, got %d", fake.listCalls)
	}
	products, err := m.Products()
	if err != nil || len(products) != 1 {
		t.Fatalf("Products after unlock: %v %v", products, err)
	}
}

func TestUnlockWithWrongPIN(t *testing.T) {
	fake := &fakeProductGateway{}
	m := NewManager(fake, "9999")

	if err := m.Unlock(context.Background(), "1234"); !errors.Is(err, ErrWrongPIN) {
		t.Fatalf("expected ErrWrongPIN, got %v", err)
	}
	if m.Unlocked() {
		t.Fatalf("wrong PIN must leave the gate locked")
	}
	if fake.listCalls != 0 {
		t.Fatalf("wrong PIN must trigger zero fetches, got %d", fake.listCalls)
	}
	if _, err := m.Products(); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestSaveCreatesWithoutIDAndUpdatesWithID(t *testing.T) {
	fake := &fakeProductGateway{}
	m := NewManager(fake, "9999")
	if err := m.Unlock(context.Background(), "9999"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	created, err := m.Save(context.Background(), models.Product{Name: "Crab Meat", Category: "Crabs", Price: 899})
	if err != nil {
		t.Fatalf("Save(create): %v", err)
	}
	if created.ID == "" || fake.createCalls != 1 || fake.updateCalls != 0 {
		t.Fatalf("expected one create, got create=%d update=%d", fake.createCalls, fake.updateCalls)
	}

	created.Price = 799
	if _, err := m.Save(context.Background(), created); err != nil {
		t.Fatalf("Save(update): %v", err)
	}
	if fake.updateCalls != 1 {
		t.Fatalf("expected one update, got %d", fake.updateCalls)
	}
	// Each successful save re-fetches the list: unlock + 2 saves.
	if fake.listCalls != 3 {
		t.Fatalf("expected 3 list fetches, got %d", fake.listCalls)
	}
}

func TestSaveFailureLeavesListUntouched(t *testing.T) {
	fake := &fakeProductGateway{products: []models.Product{{ID: "p1", Name: "Squid Rings", Category: "Squid", Price: 299}}}
	m := NewManager(fake, "9999")
	if err := m.Unlock(context.Background(), "9999"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	fake.fail = errors.New("backend down")
	if _, err := m.Save(context.Background(), models.Product{Name: "New", Category: "Fish", Price: 1}); err == nil {
		t.Fatalf("expected save failure to surface")
	}
	fake.fail = nil

	products, _ := m.Products()
	if len(products) != 1 || products[0].Name != "Squid Rings" {
		t.Fatalf("failed save must not change the list, got %v", products)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	fake := &fakeProductGateway{products: []models.Product{{ID: "p1", Name: "Pomfret", Category: "Fish", Price: 550}}}
	m := NewManager(fake, "9999")
	if err := m.Unlock(context.Background(), "9999"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	if err := m.Delete(context.Background(), "p1", false); !errors.Is(err, ErrDeleteNotConfirmed) {
		t.Fatalf("expected ErrDeleteNotConfirmed, got %v", err)
	}
	if fake.deleteCalls != 0 {
		t.Fatalf("unconfirmed delete must issue zero calls, got %d", fake.deleteCalls)
	}
	if products, _ := m.Products(); len(products) != 1 {
		t.Fatalf("unconfirmed delete must leave the list unchanged")
	}

	if err := m.Delete(context.Background(), "p1", true); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if fake.deleteCalls != 1 {
		t.Fatalf("expected one delete call, got %d", fake.deleteCalls)
	}
	if products, _ := m.Products(); len(products) != 0 {
		t.Fatalf("confirmed delete should empty the list, got %v", products)
	}
}

func TestMutationsLockedOut(t *testing.T) {
	fake := &fakeProductGateway{}
	m := NewManager(fake, "9999")

	if _, err := m.Save(context.Background(), models.Product{Name: "x"}); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if err := m.Delete(context.Background(), "p1", true); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if fake.createCalls+fake.deleteCalls != 0 {
		t.Fatalf("locked manager must not reach the backend")
	}
}
