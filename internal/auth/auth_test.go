package auth

import (
	"testing"

	"github.com/oriondesk-dev/oriondesk/internal/store"
)

func newTestGuard() *Guard {
	s := store.New(nil, store.NewEstimatorWithSource(func(n int) int { return 0 }))
	return NewGuard(s)
}

func TestValidateByIDAndEmail(t *testing.T) {
	g := newTestGuard()

	byID, err := g.Validate("ACC123", "Sundar@123")
	if err != nil {
		t.Fatalf("Validate by ID failed: %v", err)
	}
	if byID.ID != "ACC123" {
		t.Errorf("Expected ACC123, got %s", byID.ID)
	}

	byEmail, err := g.Validate("sundar@test.com", "Sundar@123")
	if err != nil {
		t.Fatalf("Validate by email failed: %v", err)
	}
	if byEmail.ID != "ACC123" {
		t.Errorf("Expected ACC123 via email, got %s", byEmail.ID)
	}
}

func TestValidateWrongPassword(t *testing.T) {
	g := newTestGuard()

	_, err := g.Validate("ACC123", "wrong")
	if err != ErrInvalidPassword {
		t.Errorf("Expected ErrInvalidPassword, got %v", err)
	}

	// Comparison is exact and case-sensitive.
	_, err = g.Validate("ACC123", "sundar@123")
	if err != ErrInvalidPassword {
		t.Errorf("Expected ErrInvalidPassword for case mismatch, got %v", err)
	}
}

func TestValidateUnknownIdentifier(t *testing.T) {
	g := newTestGuard()

	_, err := g.Validate("nonexistent", "anything")
	if err != ErrAccountNotFound {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthorizeOwnedOrder(t *testing.T) {
	g := newTestGuard()

	acc, err := g.Validate("ACC123", "Sundar@123")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	order, err := g.AuthorizeOrder(acc, "ORD001")
	if err != nil {
		t.Fatalf("AuthorizeOrder failed: %v", err)
	}
	if order.OrderID != "ORD001" || order.AccountID != "ACC123" {
		t.Errorf("Unexpected order: %+v", order)
	}
}

func TestAuthorizeForeignOrder(t *testing.T) {
	g := newTestGuard()

	acc, _ := g.Validate("ACC123", "Sundar@123")

	// ORD003 belongs to ACC124.
	_, err := g.AuthorizeOrder(acc, "ORD003")
	if err != ErrForbidden {
		t.Errorf("Expected ErrForbidden, got %v", err)
	}
}

func TestAuthorizeMissingOrder(t *testing.T) {
	g := newTestGuard()

	acc, _ := g.Validate("ACC123", "Sundar@123")
	_, err := g.AuthorizeOrder(acc, "ORD999")
	if err != ErrOrderNotFound {
		t.Errorf("Expected ErrOrderNotFound, got %v", err)
	}

	// Existence is checked before ownership: an account with no orders at
	// all still gets not-found, never forbidden, for a missing ID.
	noOrders, err := g.Validate("ACC126", "Alice@321")
	if err != nil {
		t.Fatalf("Validate ACC126 failed: %v", err)
	}
	_, err = g.AuthorizeOrder(noOrders, "ORD999")
	if err != ErrOrderNotFound {
		t.Errorf("Expected ErrOrderNotFound for orderless account, got %v", err)
	}
}
