package models

// View is the active dashboard section. Exactly one is active at a time
// and it decides what the poll loop fetches and which filter applies.
type View string

const (
	ViewOrders  View = "orders"
	ViewDrivers View = "drivers"
	ViewMenu    View = "menu"
	ViewPayouts View = "payouts"
)

// Valid reports whether v names a known dashboard section.
func (v View) Valid() bool {
	switch v {
	case ViewOrders, ViewDrivers, ViewMenu, ViewPayouts:
		return true
	}
	return false
}

// Searchable reports whether the section shows the search box.
// Drivers and menu always render their full list.
func (v View) Searchable() bool {
	return v == ViewOrders || v == ViewPayouts
}
