// Package schema defines the wire-level data structures shared by the
// OrionDesk daemon, the SDK, and the CLI.
package schema

import "time"

// IncidentStatus is the lifecycle state of a platform incident.
type IncidentStatus string

const (
	IncidentResolved      IncidentStatus = "resolved"
	IncidentInvestigating IncidentStatus = "investigating"
)

// Priority classifies how urgent an incident is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Subscription is a customer account tier.
type Subscription string

const (
	SubscriptionBasic   Subscription = "basic"
	SubscriptionPremium Subscription = "premium"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)

// Incident is a read-only platform incident record.
type Incident struct {
	ID        int            `json:"id"`
	Title     string         `json:"title"`
	Status    IncidentStatus `json:"status"`
	Priority  Priority       `json:"priority"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Account is a customer account. ID and Email are both unique and both
// usable as lookup identifiers. The password is plaintext seed data for
// the mock credential check and must never reach an API response.
type Account struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Password     string       `json:"password,omitempty"`
	Subscription Subscription `json:"subscription"`
	LastLogin    time.Time    `json:"lastLogin"`
}

// WithoutPassword returns a copy of the account safe for serialization.
func (a Account) WithoutPassword() Account {
	a.Password = ""
	return a
}

// OrderItem is a single line item within an order.
type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a customer order. AccountID references the owning Account.
// A nil DeliveryDate means the date has not been derived yet; the store
// backfills it exactly once at load time.
type Order struct {
	OrderID      string      `json:"orderId"`
	AccountID    string      `json:"accountId"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	OrderDate    time.Time   `json:"orderDate"`
	DeliveryDate *time.Time  `json:"deliveryDate,omitempty"`
}
