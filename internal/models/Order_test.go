package models

import "testing"

func TestNormalizeKeepsDriverPairBothOrNeither(t *testing.T) {
	o := Order{ID: "o1", DriverName: "Ghost"}
	o.Normalize()
	if o.DriverName != "" {
		t.Fatalf("driver name without id must be cleared, got %q", o.DriverName)
	}

	o = Order{ID: "o2", DriverID: "d1", DriverName: "Ravi"}
	o.Normalize()
	if o.DriverID != "d1" || o.DriverName != "Ravi" {
		t.Fatalf("complete pair must survive normalization, got %+v", o)
	}
	if !o.Assigned() {
		t.Fatalf("order with a driver id should report assigned")
	}
}

func TestReferenceAndCustomer(t *testing.T) {
	o := Order{ID: "64fa3c9e1b2d7a90abc123"}
	if got := o.Reference(); got != "ABC123" {
		t.Fatalf("Reference() = %q, want ABC123", got)
	}
	if got := (Order{ID: "o1"}).Reference(); got != "O1" {
		t.Fatalf("short ids are used whole, got %q", got)
	}

	if got := (Order{}).Customer(); got != "Guest" {
		t.Fatalf("missing email must display as Guest, got %q", got)
	}
	if got := (Order{UserEmail: "a@b.com"}).Customer(); got != "a@b.com" {
		t.Fatalf("Customer() = %q", got)
	}
}

func TestDriverNameResolution(t *testing.T) {
	roster := []Driver{{ID: "d1", Name: "Ravi"}}
	if got := DriverName(roster, "d1"); got != "Ravi" {
		t.Fatalf("DriverName = %q", got)
	}
	if got := DriverName(roster, "d9"); got != "Unknown Driver" {
		t.Fatalf("unresolved id must display as Unknown Driver, got %q", got)
	}
}
