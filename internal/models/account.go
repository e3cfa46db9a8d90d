// Package models defines the persisted record types of the client state
// layer and the key layout they are stored under. The JSON field names are a
// compatibility contract with existing on-device data and must not change.
package models

import (
	"errors"
	"time"
)

// Role classifies an account. Anything other than RoleAdmin is treated as a
// regular user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is a registered account as stored in the account directory.
// PasswordHash holds whatever the active credentials.Scheme produced; with
// the default scheme that is the password itself.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewAccount builds an Account after checking the fields that must never be
// empty. It does not check email uniqueness; that is the directory's job.
func NewAccount(id, name, email, passwordHash string, role Role) (*Account, error) {
	if id == "" {
		return nil, errors.New("account id must not be empty")
	}
	if name == "" {
		return nil, errors.New("account name must not be empty")
	}
	if email == "" {
		return nil, errors.New("account email must not be empty")
	}
	if role != RoleUser && role != RoleAdmin {
		return nil, errors.New("unknown account role")
	}
	return &Account{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Session is the read-only projection of an Account representing who is
// currently using the client. It intentionally excludes the password hash.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session returns the projection of the account.
func (a *Account) Session() *Session {
	return &Session{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}
