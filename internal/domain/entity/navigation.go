package entity

// Route identifies a screen in the client navigation tree.
type Route string

const (
	// RouteAdminDashboard is the dashboard root.
	RouteAdminDashboard Route = "/(admin)/dashboard"
	// RouteStaffPOS is the point-of-sale screen.
	RouteStaffPOS Route = "/(staff)/pos"
	// RouteCustomerFoods is the foods/menu screen.
	RouteCustomerFoods Route = "/(customer)/foods"
)

// String returns the string representation of the Route.
func (r Route) String() string {
	return string(r)
}

// Tab identifies an entry in the primary navigation chrome.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabUsers     Tab = "users"
	TabPOSSetup  Tab = "pos-setup"
	TabMore      Tab = "more"
	TabPOS       Tab = "pos"
	TabProfile   Tab = "profile"
	TabFoods     Tab = "foods"
	TabPoints    Tab = "points"
)

// tabPathPrefix is the navigable group every tab lives under.
const tabPathPrefix = "/(tabs)/"

// AllTabs returns every tab the client knows how to render, in display order.
func AllTabs() []Tab {
	return []Tab{TabDashboard, TabUsers, TabPOSSetup, TabMore, TabPOS, TabFoods, TabPoints, TabProfile}
}

// String returns the string representation of the Tab.
func (t Tab) String() string {
	return string(t)
}

// Path returns the navigable path of the tab.
func (t Tab) Path() string {
	return tabPathPrefix + string(t)
}

// Navigation is the role-derived navigation state handed to a client after login.
type Navigation struct {
	Role         Role            `json:"role"`
	InitialRoute Route           `json:"initial_route"`
	Tabs         []Tab           `json:"tabs"`
	TabHrefs     map[Tab]*string `json:"tab_hrefs"` // nil for tabs hidden from this role
}
