package entitlements_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harborline/portal/entitlements"
	"github.com/harborline/portal/principals"
)

var allRoles = []principals.Role{
	principals.RoleMasterAdmin,
	principals.RoleClientAdmin,
	principals.RoleSupplierAdmin,
	principals.RoleClientUser,
	principals.RoleSupplierUser,
	principals.RoleRequestor,
}

func TestNavigationForIsTotalOverDefinedRoles(t *testing.T) {
	for _, role := range allRoles {
		nav := entitlements.NavigationFor(role)
		require.NotEmpty(t, nav, "role %s must have navigation", role)
	}
}

func TestNavigationForIsDeterministic(t *testing.T) {
	for _, role := range allRoles {
		require.Equal(t, entitlements.NavigationFor(role), entitlements.NavigationFor(role))
	}
}

func TestNavigationForUnknownRoleIsEmpty(t *testing.T) {
	require.Empty(t, entitlements.NavigationFor(principals.Role("intern")))
	require.Empty(t, entitlements.NavigationFor(principals.Role("")))
}

func TestNavigationForMasterAdmin(t *testing.T) {
	nav := entitlements.NavigationFor(principals.RoleMasterAdmin)

	destinations := make([]entitlements.Destination, 0, len(nav))
	for _, item := range nav {
		destinations = append(destinations, item.Destination)
	}
	require.Contains(t, destinations, entitlements.DestUsers)
	require.Contains(t, destinations, entitlements.DestOrganizations)
	require.Contains(t, destinations, entitlements.DestProducts)
	require.Contains(t, destinations, entitlements.DestVisibility)
	require.Contains(t, destinations, entitlements.DestOrders)
}

func TestNavigationForRequestor(t *testing.T) {
	nav := entitlements.NavigationFor(principals.RoleRequestor)

	require.Equal(t, []entitlements.NavItem{
		{Destination: entitlements.DestDashboard, Label: "Dashboard"},
		{Destination: entitlements.DestBrowse, Label: "Browse Catalog"},
		{Destination: entitlements.DestRequests, Label: "My Requests"},
		{Destination: entitlements.DestNotifications, Label: "Notifications"},
	}, nav)
}

func TestNavigationForReturnsACopy(t *testing.T) {
	nav := entitlements.NavigationFor(principals.RoleRequestor)
	nav[0].Label = "mutated"

	require.Equal(t, "Dashboard", entitlements.NavigationFor(principals.RoleRequestor)[0].Label)
}

func TestPortalForDefinedRoles(t *testing.T) {
	for _, role := range allRoles {
		portal := entitlements.PortalFor(role)
		require.NotEmpty(t, portal.Title)
		require.NotEmpty(t, portal.Accent)
	}
}

func TestPortalForUnknownRoleIsNeutral(t *testing.T) {
	portal := entitlements.PortalFor(principals.Role("intern"))
	require.Equal(t, "Portal", portal.Title)
}
