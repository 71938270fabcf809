package principals

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role represents a principal's role within the portal. The set is closed:
// navigation, data scoping and admin affordances all branch on these values.
type Role string

const (
	RoleMasterAdmin   Role = "master_admin"   // Operates the whole portal across organizations
	RoleClientAdmin   Role = "client_admin"   // Manages a client organization's users and orders
	RoleSupplierAdmin Role = "supplier_admin" // Manages a supplier organization's catalog and orders
	RoleClientUser    Role = "client_user"    // Regular user within a client organization
	RoleSupplierUser  Role = "supplier_user"  // Regular user within a supplier organization
	RoleRequestor     Role = "requestor"      // Lightweight identity that raises purchase requests
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMasterAdmin, RoleClientAdmin, RoleSupplierAdmin, RoleClientUser, RoleSupplierUser, RoleRequestor:
		return true
	}
	return false
}

// Status is informational account state. Login is not status-gated; consumers
// may surface it but nothing in this package enforces it.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// LastLogin records when and from where a principal last authenticated.
// Overwritten on every successful login, never read for access decisions.
type LastLogin struct {
	Timestamp time.Time `json:"timestamp"`
	IP        string    `json:"ip"`
}

type Principal struct {
	ID               string    `json:"id,omitempty"`                // Unique identifier, stable and never reused
	Name             string    `json:"name,omitempty"`              // Display name
	Email            string    `json:"email,omitempty"`             // Authentication lookup key, unique across all principals
	Role             Role      `json:"role,omitempty"`              // Immutable per login cycle
	OrganizationID   string    `json:"organization_id,omitempty"`   // Owning tenant, the data-scoping boundary
	OrganizationName string    `json:"organization_name,omitempty"` // Display name of the owning tenant
	LastLogin        LastLogin `json:"last_login"`
	Status           Status    `json:"status,omitempty"`
	PasswordHash     string    `json:"-"` // Hashed password - stored but never serialized
}

// Clone returns a copy of the principal so callers can stamp new attributes
// without mutating the stored record.
func (p *Principal) Clone() *Principal {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
