package controllers

import (
	"fishyy_admin/internal/inventory"
	"fishyy_admin/internal/store"
)

var (
	// dashboard is the globally shared snapshot store behind every handler.
	dashboard *store.Store
	// inv guards the menu behind the PIN gate.
	inv *inventory.Manager
)

// Init wires the handlers to their state. Called once from main.
func Init(s *store.Store, m *inventory.Manager) {
	dashboard = s
	inv = m
}
