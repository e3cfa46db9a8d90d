// Package transition coordinates the identity state machine. The coordinator
// has two states, Guest and Authenticated, and owns the one transition with
// real work in it: on login or registration the guest wishlist is merged into
// the account's bucket before the call returns, so no caller can observe the
// new bucket pre-merge. Logging out migrates nothing -- the vacated user
// bucket stays on disk for the next login, and subsequent operations see the
// guest bucket.
//
// The cart is intentionally not merged across the transition; only the
// bucket key used for subsequent cart operations changes.
package transition

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/identity"
	"github.com/dmitrijs2005/shopkeeper/internal/kvstore"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/models"
	"github.com/dmitrijs2005/shopkeeper/internal/wishlist"
)

type State string

const (
	StateGuest         State = "guest"
	StateAuthenticated State = "authenticated"
)

// Coordinator wraps the identity service so that every identity change runs
// its bucket transition before control returns to the caller.
type Coordinator struct {
	db       *sql.DB
	identity *identity.Service
	log      logging.Logger

	state     State
	accountID string
}

func NewCoordinator(db *sql.DB, ident *identity.Service, log logging.Logger) *Coordinator {
	return &Coordinator{
		db:       db,
		identity: ident,
		log:      log.With("component", "transition"),
		state:    StateGuest,
	}
}

// Resume adopts a session persisted by a previous process run. The merge for
// that login already ran when it happened, so none runs here.
func (c *Coordinator) Resume(ctx context.Context) {
	if sess := c.identity.Current(ctx); sess != nil {
		c.state = StateAuthenticated
		c.accountID = sess.ID
	}
}

// State returns the current machine state.
func (c *Coordinator) State() State {
	return c.state
}

// Bucket returns the storage bucket cart and wishlist operations must use.
func (c *Coordinator) Bucket() string {
	if c.state == StateAuthenticated {
		return models.BucketKey(c.accountID)
	}
	return models.GuestBucket
}

// Session returns the active session, or nil in the guest state.
func (c *Coordinator) Session(ctx context.Context) *models.Session {
	return c.identity.Current(ctx)
}

// IsAdmin proxies the identity admin check.
func (c *Coordinator) IsAdmin(ctx context.Context) bool {
	return c.identity.IsAdmin(ctx)
}

// UpdateProfile proxies profile updates; they do not change the bucket.
func (c *Coordinator) UpdateProfile(ctx context.Context, patch identity.ProfilePatch) error {
	return c.identity.UpdateProfile(ctx, patch)
}

// Login authenticates and, on success, transitions Guest -> Authenticated,
// merging the guest wishlist into the account bucket.
func (c *Coordinator) Login(ctx context.Context, email, password string) (*models.Session, error) {
	sess, err := c.identity.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := c.activate(ctx, sess.ID); err != nil {
		return nil, err
	}
	return sess, nil
}

// Register creates the account and performs the same transition as Login.
func (c *Coordinator) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	sess, err := c.identity.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	if err := c.activate(ctx, sess.ID); err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout clears the session and returns to the guest state. No data moves.
func (c *Coordinator) Logout(ctx context.Context) error {
	if err := c.identity.Logout(ctx); err != nil {
		return err
	}
	c.state = StateGuest
	c.accountID = ""
	return nil
}

// activate runs the guest->user wishlist merge in a single transaction, then
// flips the machine state. The transaction guarantees the merged result and
// the cleared guest bucket land together.
func (c *Coordinator) activate(ctx context.Context, accountID string) error {
	err := dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := kvstore.NewSQLiteStore(tx)
		return wishlist.NewService(st, c.log).MergeGuest(ctx, accountID)
	})
	if err != nil {
		return fmt.Errorf("failed to merge guest wishlist: %w", err)
	}

	c.state = StateAuthenticated
	c.accountID = accountID
	c.log.Info(ctx, "session transition", "state", c.state, "bucket", c.Bucket())
	return nil
}
