// Package auth implements the credential check and the order ownership
// gate that guard the account and order endpoints.
package auth

import (
	"errors"

	"github.com/oriondesk-dev/oriondesk/internal/store"
	"github.com/oriondesk-dev/oriondesk/pkg/schema"
)

var (
	// ErrAccountNotFound is returned when no account matches the identifier.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidPassword is returned when the account exists but the
	// supplied password does not match.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrOrderNotFound is returned when no order matches the requested ID.
	ErrOrderNotFound = errors.New("order not found")
	// ErrForbidden is returned when the order exists but belongs to a
	// different account than the validated caller.
	ErrForbidden = errors.New("unauthorized access to order")
)

// Guard validates credentials and authorizes order access against the
// dataset store. It holds no state of its own: every request re-runs the
// full check, there are no sessions or tokens.
type Guard struct {
	store *store.Store
}

// NewGuard returns a guard backed by the given store.
func NewGuard(s *store.Store) *Guard {
	return &Guard{store: s}
}

// Validate resolves an account by identifier (ID or email) and checks the
// supplied password against the stored one. The comparison is an exact,
// case-sensitive string match; this is mock seed data, not a credential
// scheme to copy.
func (g *Guard) Validate(identifier, password string) (schema.Account, error) {
	acc, ok := g.store.AccountByIdentifier(identifier)
	if !ok {
		return schema.Account{}, ErrAccountNotFound
	}
	if acc.Password != password {
		return schema.Account{}, ErrInvalidPassword
	}
	return acc, nil
}

// AuthorizeOrder looks up an order and confirms the validated account
// owns it. The existence check runs first: a missing order reports
// ErrOrderNotFound even when the caller owns no orders at all, and only
// an existing foreign order reports ErrForbidden.
func (g *Guard) AuthorizeOrder(account schema.Account, orderID string) (schema.Order, error) {
	order, ok := g.store.OrderByID(orderID)
	if !ok {
		return schema.Order{}, ErrOrderNotFound
	}
	if order.AccountID != account.ID {
		return schema.Order{}, ErrForbidden
	}
	return order, nil
}
