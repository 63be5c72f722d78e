package store

import (
	"math/rand"
	"time"

	"github.com/oriondesk-dev/oriondesk/pkg/schema"
)

// DeliveredReferenceDate is the date assigned to every delivered order in
// the seed data. Delivered orders are pinned to this single constant so
// the fixture dataset stays stable across restarts; it is seed policy,
// not a delivery-time calculation.
var DeliveredReferenceDate = time.Date(2024, time.March, 18, 0, 0, 0, 0, time.UTC)

// Estimator derives a delivery date for an order from its status and
// order date. The offset for in-flight orders is random, so consecutive
// calls with identical inputs may differ.
type Estimator struct {
	intn func(n int) int
}

// NewEstimator returns an estimator backed by math/rand.
func NewEstimator() *Estimator {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Estimator{intn: rng.Intn}
}

// NewEstimatorWithSource returns an estimator using the given random
// source. intn must behave like rand.Intn: a value in [0, n).
func NewEstimatorWithSource(intn func(n int) int) *Estimator {
	return &Estimator{intn: intn}
}

// Estimate returns the delivery date for an order placed at orderDate.
// Processing orders land 3-5 whole days out, shipped orders 2-4 days out,
// delivered orders get the pinned reference date, and anything else keeps
// its order date unchanged.
func (e *Estimator) Estimate(orderDate time.Time, status schema.OrderStatus) time.Time {
	switch status {
	case schema.OrderDelivered:
		return DeliveredReferenceDate
	case schema.OrderProcessing:
		return orderDate.AddDate(0, 0, 3+e.intn(3))
	case schema.OrderShipped:
		return orderDate.AddDate(0, 0, 2+e.intn(3))
	default:
		return orderDate
	}
}
