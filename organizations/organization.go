package organizations

import "github.com/harborline/portal/principals"

// Kind classifies which side of the catalog/ordering flow an organization
// sits on.
type Kind string

const (
	KindClient   Kind = "client"   // Buys through the portal
	KindSupplier Kind = "supplier" // Publishes catalog items
	KindOperator Kind = "operator" // Runs the portal itself
)

// Organization represents a tenant. A principal's OrganizationID is the
// data-scoping boundary: consumers filter everything by equality against it.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// FromPrincipals derives the organization directory from a principal listing.
// Kind is inferred from the roles seen within each organization; operator wins
// over supplier, supplier over client, mirroring role privilege ordering.
func FromPrincipals(list []*principals.Principal) []*Organization {
	byID := make(map[string]*Organization)
	order := make([]string, 0)

	for _, p := range list {
		if p.OrganizationID == "" {
			continue
		}
		org, ok := byID[p.OrganizationID]
		if !ok {
			org = &Organization{ID: p.OrganizationID, Name: p.OrganizationName, Kind: KindClient}
			byID[p.OrganizationID] = org
			order = append(order, p.OrganizationID)
		}
		switch kindForRole(p.Role) {
		case KindOperator:
			org.Kind = KindOperator
		case KindSupplier:
			if org.Kind != KindOperator {
				org.Kind = KindSupplier
			}
		}
	}

	out := make([]*Organization, 0, len(byID))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

func kindForRole(role principals.Role) Kind {
	switch role {
	case principals.RoleMasterAdmin:
		return KindOperator
	case principals.RoleSupplierAdmin, principals.RoleSupplierUser:
		return KindSupplier
	default:
		return KindClient
	}
}
