// Package entitlements maps roles to the navigation destinations they may
// reach and the portal identity shown for that role's operating context.
// Everything here is a pure lookup over static tables; unknown roles resolve
// to nothing rather than erroring.
package entitlements

import "github.com/harborline/portal/principals"

// Destination names a navigable area of the portal.
type Destination string

const (
	DestDashboard     Destination = "dashboard"
	DestBrowse        Destination = "browse"
	DestOrders        Destination = "orders"
	DestRequests      Destination = "requests"
	DestNotifications Destination = "notifications"
	DestUsers         Destination = "users"
	DestOrganizations Destination = "organizations"
	DestProducts      Destination = "products"
	DestVisibility    Destination = "visibility"
	DestAnalytics     Destination = "analytics"
)

// NavItem is one entry in a role's ordered navigation.
type NavItem struct {
	Destination Destination `json:"destination"`
	Label       string      `json:"label"`
}

// Portal is the display identity of the operating context a role lands in.
type Portal struct {
	Title  string `json:"title"`
	Accent string `json:"accent"`
}

var navigationTable = map[principals.Role][]NavItem{
	principals.RoleMasterAdmin: {
		{DestUsers, "User Management"},
		{DestOrganizations, "Organizations"},
		{DestProducts, "Product Management"},
		{DestVisibility, "Catalog Visibility"},
		{DestOrders, "Order Management"},
		{DestAnalytics, "Analytics"},
	},
	principals.RoleClientAdmin: {
		{DestDashboard, "Dashboard"},
		{DestBrowse, "Browse Catalog"},
		{DestOrders, "Orders"},
		{DestUsers, "Team"},
		{DestAnalytics, "Analytics"},
	},
	principals.RoleSupplierAdmin: {
		{DestDashboard, "Dashboard"},
		{DestProducts, "Products"},
		{DestOrders, "Orders"},
		{DestUsers, "Team"},
		{DestAnalytics, "Analytics"},
	},
	principals.RoleClientUser: {
		{DestDashboard, "Dashboard"},
		{DestBrowse, "Browse Catalog"},
		{DestOrders, "Orders"},
	},
	principals.RoleSupplierUser: {
		{DestDashboard, "Dashboard"},
		{DestProducts, "Products"},
		{DestOrders, "Orders"},
	},
	principals.RoleRequestor: {
		{DestDashboard, "Dashboard"},
		{DestBrowse, "Browse Catalog"},
		{DestRequests, "My Requests"},
		{DestNotifications, "Notifications"},
	},
}

var portalTable = map[principals.Role]Portal{
	principals.RoleMasterAdmin:   {Title: "Operations Console", Accent: "#1f2937"},
	principals.RoleClientAdmin:   {Title: "Procurement Portal", Accent: "#2563eb"},
	principals.RoleClientUser:    {Title: "Procurement Portal", Accent: "#2563eb"},
	principals.RoleSupplierAdmin: {Title: "Supplier Portal", Accent: "#059669"},
	principals.RoleSupplierUser:  {Title: "Supplier Portal", Accent: "#059669"},
	principals.RoleRequestor:     {Title: "Request Center", Accent: "#7c3aed"},
}

// NavigationFor returns the ordered navigation for role. Unknown roles get
// an empty sequence. The returned slice is a copy and safe to mutate.
func NavigationFor(role principals.Role) []NavItem {
	items, ok := navigationTable[role]
	if !ok {
		return []NavItem{}
	}
	out := make([]NavItem, len(items))
	copy(out, items)
	return out
}

// PortalFor returns the display identity for role's operating context.
// Unknown roles get a neutral identity.
func PortalFor(role principals.Role) Portal {
	if portal, ok := portalTable[role]; ok {
		return portal
	}
	return Portal{Title: "Portal", Accent: "#6b7280"}
}
