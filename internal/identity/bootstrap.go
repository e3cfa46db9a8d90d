package identity

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/models"
)

// Fixed bootstrap credentials. These mirror the accounts earlier client
// versions seeded, so existing devices keep working.
const (
	AdminID       = "admin-1"
	AdminName     = "Admin User"
	AdminEmail    = "admin@sportsequip.com"
	AdminPassword = "admin123"

	DemoUserID       = "user-1"
	DemoUserName     = "Demo User"
	DemoUserEmail    = "user@example.com"
	DemoUserPassword = "user123"
)

// Bootstrap seeds the fixed admin account when no admin-role account exists,
// and the demo user when its email is absent. It runs once at process start
// and is idempotent.
func (s *Service) Bootstrap(ctx context.Context) error {
	accounts := s.accounts(ctx)
	changed := false

	hasAdmin := false
	for _, a := range accounts {
		if a.Role == models.RoleAdmin {
			hasAdmin = true
			break
		}
	}
	if !hasAdmin {
		hash, err := s.scheme.Hash(AdminPassword)
		if err != nil {
			return err
		}
		admin, err := models.NewAccount(AdminID, AdminName, AdminEmail, hash, models.RoleAdmin)
		if err != nil {
			return err
		}
		accounts = append(accounts, *admin)
		changed = true
	}

	hasDemo := false
	for _, a := range accounts {
		if a.Email == DemoUserEmail {
			hasDemo = true
			break
		}
	}
	if !hasDemo {
		hash, err := s.scheme.Hash(DemoUserPassword)
		if err != nil {
			return err
		}
		demo, err := models.NewAccount(DemoUserID, DemoUserName, DemoUserEmail, hash, models.RoleUser)
		if err != nil {
			return err
		}
		accounts = append(accounts, *demo)
		changed = true
	}

	if !changed {
		return nil
	}

	if err := s.saveAccounts(ctx, accounts); err != nil {
		return err
	}
	s.log.Info(ctx, "bootstrap accounts seeded")
	return nil
}
