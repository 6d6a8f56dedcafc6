package impl

import (
	"slices"

	"pos/internal/domain/entity"
)

// InitialRouteForRole returns the screen a user with role lands on after login.
// Unknown roles get the customer experience.
func InitialRouteForRole(role entity.Role) entity.Route {
	route, _, _ := routeRole(role)

	return route
}

// TabsForRole returns the ordered tabs visible to role. Unknown roles get the customer tabs.
// The returned slice is owned by the caller.
func TabsForRole(role entity.Role) []entity.Tab {
	_, tabs, _ := routeRole(role)

	return tabs
}

// routeRole holds the only role switch. known is false when role fell into the fallback arm.
func routeRole(role entity.Role) (route entity.Route, tabs []entity.Tab, known bool) {
	switch role {
	case entity.RoleAdmin:
		return entity.RouteAdminDashboard,
			[]entity.Tab{entity.TabDashboard, entity.TabUsers, entity.TabPOSSetup, entity.TabMore},
			true
	case entity.RoleStaff:
		return entity.RouteStaffPOS, []entity.Tab{entity.TabPOS, entity.TabProfile}, true
	case entity.RoleCustomer:
		return entity.RouteCustomerFoods, customerTabs(), true
	default:
		return entity.RouteCustomerFoods, customerTabs(), false
	}
}

func customerTabs() []entity.Tab {
	return []entity.Tab{entity.TabFoods, entity.TabPoints, entity.TabProfile}
}

// IsTabVisible reports whether tab is part of the navigation of role.
func IsTabVisible(role entity.Role, tab entity.Tab) bool {
	return slices.Contains(TabsForRole(role), tab)
}

// TabHref returns the navigable path of tab for role. Hidden tabs have no path.
func TabHref(role entity.Role, tab entity.Tab) (string, bool) {
	if !IsTabVisible(role, tab) {
		return "", false
	}

	return tab.Path(), true
}
