// Command seed populates the principal directory file with a demo principal
// for each role, one per organization, so a fresh checkout can log in
// immediately.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/harborline/portal/internal/config"
	"github.com/harborline/portal/principals"
	"github.com/harborline/portal/principals/filerepo"
)

type seedPrincipal struct {
	Name     string
	Email    string
	Password string
	Role     principals.Role
	OrgID    string
	OrgName  string
}

var seedPrincipals = []seedPrincipal{
	{"Morgan Hale", "morgan@harborline.io", "Harborline1", principals.RoleMasterAdmin, "org-harborline", "Harborline Operations"},
	{"Alice Chen", "alice@acme.com", "AcmeAdmin1", principals.RoleClientAdmin, "org-acme", "Acme Industrial"},
	{"Ben Ortiz", "ben@acme.com", "AcmeUser1", principals.RoleClientUser, "org-acme", "Acme Industrial"},
	{"Sara Lindqvist", "sara@nordic-supply.se", "Nordic1Supply", principals.RoleSupplierAdmin, "org-nordic", "Nordic Supply AB"},
	{"Tomas Berg", "tomas@nordic-supply.se", "Nordic1User", principals.RoleSupplierUser, "org-nordic", "Nordic Supply AB"},
	{"Rita Kapoor", "rita@acme.com", "AcmeRequest1", principals.RoleRequestor, "org-acme", "Acme Industrial"},
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("config.New")
	}

	repo, err := filerepo.New(cfg.GetPrincipalsFile())
	if err != nil {
		logger.Fatal().Err(err).Msg("filerepo.New")
	}

	for _, sp := range seedPrincipals {
		hash, err := principals.HashPassword(sp.Password)
		if err != nil {
			logger.Fatal().Err(err).Str("email", sp.Email).Msg("hash password")
		}
		if err := repo.Upsert(&principals.Principal{
			ID:               uuid.New().String(),
			Name:             sp.Name,
			Email:            sp.Email,
			Role:             sp.Role,
			OrganizationID:   sp.OrgID,
			OrganizationName: sp.OrgName,
			Status:           principals.StatusActive,
			PasswordHash:     hash,
		}); err != nil {
			logger.Fatal().Err(err).Str("email", sp.Email).Msg("upsert principal")
		}
		logger.Info().Str("email", sp.Email).Str("role", string(sp.Role)).Msg("seeded")
	}

	fmt.Printf("seeded %d principals into %s\n", len(seedPrincipals), cfg.GetPrincipalsFile())
}
