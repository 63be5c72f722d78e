// Package api contains the gin handlers for the OrionDesk REST endpoints.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oriondesk-dev/oriondesk/internal/auth"
	"github.com/oriondesk-dev/oriondesk/internal/store"
)

// Error messages surfaced to API clients. The account-not-found and
// invalid-password texts differ even though both map to 401.
const (
	MsgPasswordRequired   = "Password is required"
	MsgIdentifierRequired = "Either Account ID or Email is required"
	MsgAccountNotFound    = "Account not found"
	MsgInvalidPassword    = "Invalid password"
	MsgOrderNotFound      = "Order not found"
	MsgOrderForbidden     = "Unauthorized access to order"
)

type Handler struct {
	Store *store.Store
	Guard *auth.Guard
}

// Health reports a static healthy status. No auth, no data access.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// GetIncidents returns the full incident collection. No auth.
func (h *Handler) GetIncidents(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Incidents())
}

// GetAccount returns a single account looked up by path ID, after
// checking the password supplied as a query parameter.
func (h *Handler) GetAccount(c *gin.Context) {
	id := c.Param("id")
	password := c.Query("password")
	if password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgPasswordRequired})
		return
	}

	acc, err := h.Guard.Validate(id, password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": credentialMessage(err)})
		return
	}
	c.JSON(http.StatusOK, acc.WithoutPassword())
}

// GetOrders returns every order owned by the account resolved from the
// accountId or email query parameter. Listing needs no per-order
// ownership gate; the filter itself scopes the result to the caller.
func (h *Handler) GetOrders(c *gin.Context) {
	identifier, ok := h.requireCredentialParams(c)
	if !ok {
		return
	}

	acc, err := h.Guard.Validate(identifier, c.Query("password"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": credentialMessage(err)})
		return
	}
	c.JSON(http.StatusOK, h.Store.OrdersForAccount(acc.ID))
}

// GetOrder returns a single order by path ID. Credentials are validated
// first, then the ownership gate runs: a missing order is a 404 before
// ownership is ever considered, an existing foreign order is a 403.
func (h *Handler) GetOrder(c *gin.Context) {
	identifier, ok := h.requireCredentialParams(c)
	if !ok {
		return
	}

	acc, err := h.Guard.Validate(identifier, c.Query("password"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": credentialMessage(err)})
		return
	}

	order, err := h.Guard.AuthorizeOrder(acc, c.Param("orderId"))
	switch {
	case errors.Is(err, auth.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": MsgOrderNotFound})
	case errors.Is(err, auth.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": MsgOrderForbidden})
	default:
		c.JSON(http.StatusOK, order)
	}
}

// requireCredentialParams enforces the shared preconditions of the order
// routes: a password plus at least one identifier. When both identifiers
// are supplied the account ID wins; no consistency check between the two
// is attempted.
func (h *Handler) requireCredentialParams(c *gin.Context) (identifier string, ok bool) {
	if c.Query("password") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgPasswordRequired})
		return "", false
	}

	identifier = c.Query("accountId")
	if identifier == "" {
		identifier = c.Query("email")
	}
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgIdentifierRequired})
		return "", false
	}
	return identifier, true
}

func credentialMessage(err error) string {
	if errors.Is(err, auth.ErrInvalidPassword) {
		return MsgInvalidPassword
	}
	return MsgAccountNotFound
}
