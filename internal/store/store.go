// Package store holds the immutable in-memory datasets served by the
// OrionDesk API: incidents, accounts, and orders.
package store

import (
	"github.com/oriondesk-dev/oriondesk/pkg/schema"
)

// Dataset is the loadable shape of the three collections. It doubles as
// the JSON format for seed files.
type Dataset struct {
	Incidents []schema.Incident `json:"incidents"`
	Accounts  []schema.Account  `json:"accounts"`
	Orders    []schema.Order    `json:"orders"`
}

// Store is the read-only dataset store. All mutation happens inside New;
// after it returns the collections are never written again, so handlers
// may read concurrently without locking.
type Store struct {
	incidents []schema.Incident
	accounts  []schema.Account
	orders    []schema.Order
}

// New builds a store from the given dataset, deriving a delivery date for
// every order that lacks one. A nil dataset loads the built-in fixtures;
// a nil estimator uses the default random source. The backfill runs once
// here and never again: orders that already carry a delivery date keep it.
func New(ds *Dataset, est *Estimator) *Store {
	if ds == nil {
		ds = BuiltinDataset()
	}
	if est == nil {
		est = NewEstimator()
	}

	s := &Store{
		incidents: make([]schema.Incident, len(ds.Incidents)),
		accounts:  make([]schema.Account, len(ds.Accounts)),
		orders:    make([]schema.Order, len(ds.Orders)),
	}
	copy(s.incidents, ds.Incidents)
	copy(s.accounts, ds.Accounts)
	copy(s.orders, ds.Orders)

	for i := range s.orders {
		if s.orders[i].DeliveryDate == nil {
			d := est.Estimate(s.orders[i].OrderDate, s.orders[i].Status)
			s.orders[i].DeliveryDate = &d
		}
	}
	return s
}

// Incidents returns the full incident collection.
func (s *Store) Incidents() []schema.Incident {
	out := make([]schema.Incident, len(s.incidents))
	copy(out, s.incidents)
	return out
}

// AccountByIdentifier resolves an account by ID or email. The two fields
// share one lookup namespace; the first match wins.
func (s *Store) AccountByIdentifier(identifier string) (schema.Account, bool) {
	for _, acc := range s.accounts {
		if acc.ID == identifier || acc.Email == identifier {
			return acc, true
		}
	}
	return schema.Account{}, false
}

// OrderByID looks up a single order by its exact order ID.
func (s *Store) OrderByID(orderID string) (schema.Order, bool) {
	for _, o := range s.orders {
		if o.OrderID == orderID {
			return o, true
		}
	}
	return schema.Order{}, false
}

// OrdersForAccount returns every order owned by the given account ID.
// The result is never nil, so an account without orders serializes as [].
func (s *Store) OrdersForAccount(accountID string) []schema.Order {
	out := make([]schema.Order, 0)
	for _, o := range s.orders {
		if o.AccountID == accountID {
			out = append(out, o)
		}
	}
	return out
}

// Dataset returns a copy of the effective (post-backfill) dataset.
func (s *Store) Dataset() *Dataset {
	ds := &Dataset{
		Incidents: make([]schema.Incident, len(s.incidents)),
		Accounts:  make([]schema.Account, len(s.accounts)),
		Orders:    make([]schema.Order, len(s.orders)),
	}
	copy(ds.Incidents, s.incidents)
	copy(ds.Accounts, s.accounts)
	copy(ds.Orders, s.orders)
	return ds
}
