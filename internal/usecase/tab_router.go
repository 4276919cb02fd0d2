package usecase

import "tradeacademy/internal/domain"

// TabRouter holds the single active view of a session
type TabRouter struct {
	active domain.TabID
}

// NewTabRouter creates a router on the dashboard tab
func NewTabRouter() *TabRouter {
	return &TabRouter{active: domain.TabDashboard}
}

// Active returns the current tab
func (r *TabRouter) Active() domain.TabID {
	return r.active
}

// Select switches to the given tab unconditionally.
// Unrecognized identifiers fall back to the dashboard.
func (r *TabRouter) Select(raw string) domain.TabID {
	tab, ok := domain.ParseTab(raw)
	if !ok {
		tab = domain.TabDashboard
	}
	r.active = tab
	return tab
}
