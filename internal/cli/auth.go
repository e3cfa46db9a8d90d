package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/identity"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates a new account.
// On success the user is logged in immediately and the guest wishlist has
// been carried over to the new account.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.coord.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", sess.Name))
	return nil
}

// Login prompts for credentials and authenticates. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.coord.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", sess.Name))
	return nil
}

// Logout ends the session and returns to guest browsing.
func (a *App) Logout(ctx context.Context) error {
	if err := a.coord.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the active session.
func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.coord.Session(ctx)
	if sess == nil {
		printlnFn("Browsing as guest")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> (%s)", sess.Name, sess.Email, sess.Role))
	return nil
}

// UpdateProfile prompts for new profile values; empty input keeps the
// current value.
func (a *App) UpdateProfile(ctx context.Context) error {
	sess := a.coord.Session(ctx)
	if sess == nil {
		return common.ErrNotAuthenticated
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Enter name [%s]", sess.Name), os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Enter email [%s]", sess.Email), os.Stdout)
	if err != nil {
		return err
	}

	patch := identity.ProfilePatch{}
	if name != "" {
		patch.Name = &name
	}
	if email != "" {
		patch.Email = &email
	}

	if err := a.coord.UpdateProfile(ctx, patch); err != nil {
		return err
	}
	printlnFn("Profile updated")
	return nil
}
