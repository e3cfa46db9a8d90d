// Package identity manages the registered-account directory and the single
// active session. Accounts live under the "accounts" key as a flat list;
// lookups are linear scans by email or id, with case-sensitive exact email
// comparison.
package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/kvstore"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/models"
	"github.com/dmitrijs2005/shopkeeper/internal/storage"
)

// ProfilePatch carries the fields UpdateProfile may change. Nil fields are
// left as they are.
type ProfilePatch struct {
	Name     *string
	Email    *string
	Password *string
}

// Service implements registration, login, logout, profile updates and the
// admin check over the account directory and session keys.
type Service struct {
	st     kvstore.Store
	scheme Scheme
	log    logging.Logger

	newID func() string
}

// NewService constructs a Service using the given store and credential
// scheme.
func NewService(st kvstore.Store, scheme Scheme, log logging.Logger) *Service {
	return &Service{
		st:     st,
		scheme: scheme,
		log:    log.With("component", "identity"),
		newID:  uuid.NewString,
	}
}

func (s *Service) accounts(ctx context.Context) []models.Account {
	return storage.Load(ctx, s.st, models.KeyAccounts, []models.Account{})
}

func (s *Service) saveAccounts(ctx context.Context, accounts []models.Account) error {
	return storage.Save(ctx, s.st, models.KeyAccounts, accounts)
}

func (s *Service) saveSession(ctx context.Context, sess *models.Session) error {
	return storage.Save(ctx, s.st, models.KeySession, sess)
}

// Current returns the active session, or nil if nobody is logged in.
func (s *Service) Current(ctx context.Context) *models.Session {
	return storage.Load[*models.Session](ctx, s.st, models.KeySession, nil)
}

// Register creates an account with a fresh id and role "user", persists it in
// the directory, and opens a session for it. Returns ErrDuplicateEmail if the
// email is already registered.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	accounts := s.accounts(ctx)

	for _, a := range accounts {
		if a.Email == email {
			return nil, common.ErrDuplicateEmail
		}
	}

	hash, err := s.scheme.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := models.NewAccount(s.newID(), name, email, hash, models.RoleUser)
	if err != nil {
		return nil, err
	}

	if err := s.saveAccounts(ctx, append(accounts, *account)); err != nil {
		return nil, err
	}

	sess := account.Session()
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "account registered", "id", account.ID, "email", account.Email)
	return sess, nil
}

// Login verifies the credentials against the directory and, on success,
// persists the session projection. A failed login changes nothing.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Session, error) {
	for _, a := range s.accounts(ctx) {
		if a.Email == email && s.scheme.Verify(a.PasswordHash, password) {
			sess := a.Session()
			if err := s.saveSession(ctx, sess); err != nil {
				return nil, err
			}
			s.log.Info(ctx, "login", "id", a.ID)
			return sess, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

// Logout clears the active session. Logging out while logged out is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	if err := storage.Clear(ctx, s.st, models.KeySession); err != nil {
		return err
	}
	s.log.Info(ctx, "logout")
	return nil
}

// UpdateProfile merges the patch into the current account and into the
// session projection, persisting both. Returns ErrNotAuthenticated with no
// session and ErrAccountNotFound when the session's id is no longer in the
// directory (stale session).
func (s *Service) UpdateProfile(ctx context.Context, patch ProfilePatch) error {
	sess := s.Current(ctx)
	if sess == nil {
		return common.ErrNotAuthenticated
	}

	accounts := s.accounts(ctx)
	idx := -1
	for i, a := range accounts {
		if a.ID == sess.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return common.ErrAccountNotFound
	}

	if patch.Name != nil {
		accounts[idx].Name = *patch.Name
	}
	if patch.Email != nil {
		accounts[idx].Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := s.scheme.Hash(*patch.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		accounts[idx].PasswordHash = hash
	}

	if err := s.saveAccounts(ctx, accounts); err != nil {
		return err
	}
	if err := s.saveSession(ctx, accounts[idx].Session()); err != nil {
		return err
	}

	s.log.Info(ctx, "profile updated", "id", sess.ID)
	return nil
}

// IsAdmin reports whether a session is active and has the admin role.
func (s *Service) IsAdmin(ctx context.Context) bool {
	sess := s.Current(ctx)
	return sess != nil && sess.Role == models.RoleAdmin
}
