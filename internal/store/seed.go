package store

import (
	"time"

	"github.com/oriondesk-dev/oriondesk/pkg/schema"
)

// BuiltinDataset returns the fixture dataset the daemon serves when no
// seed file is configured. In a real application this would come from a
// database; here it is fixed sample data.
func BuiltinDataset() *Dataset {
	return &Dataset{
		Incidents: []schema.Incident{
			{
				ID:        1,
				Title:     "Server Outage",
				Status:    schema.IncidentResolved,
				Priority:  schema.PriorityHigh,
				CreatedAt: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
			},
			{
				ID:        2,
				Title:     "Database Connection Issue",
				Status:    schema.IncidentInvestigating,
				Priority:  schema.PriorityMedium,
				CreatedAt: time.Date(2024, time.March, 15, 11, 30, 0, 0, time.UTC),
			},
		},
		Accounts: []schema.Account{
			{
				ID:           "ACC123",
				Name:         "Sundar",
				Email:        "sundar@test.com",
				Password:     "Sundar@123",
				Subscription: schema.SubscriptionPremium,
				LastLogin:    time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
			},
			{
				ID:           "ACC124",
				Name:         "Jane Smith",
				Email:        "jane.smith@example.com",
				Password:     "Jane@456",
				Subscription: schema.SubscriptionBasic,
				LastLogin:    time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC),
			},
			{
				ID:           "ACC125",
				Name:         "Bob Johnson",
				Email:        "bob.johnson@example.com",
				Password:     "Bob@789",
				Subscription: schema.SubscriptionPremium,
				LastLogin:    time.Date(2024, time.March, 14, 15, 45, 0, 0, time.UTC),
			},
			{
				ID:           "ACC126",
				Name:         "Alice Brown",
				Email:        "alice.brown@example.com",
				Password:     "Alice@321",
				Subscription: schema.SubscriptionBasic,
				LastLogin:    time.Date(2024, time.March, 15, 8, 20, 0, 0, time.UTC),
			},
			{
				ID:           "ACC127",
				Name:         "Charlie Wilson",
				Email:        "charlie.wilson@example.com",
				Password:     "Charlie@654",
				Subscription: schema.SubscriptionPremium,
				LastLogin:    time.Date(2024, time.March, 15, 11, 15, 0, 0, time.UTC),
			},
		},
		Orders: []schema.Order{
			{
				OrderID:   "ORD001",
				AccountID: "ACC123",
				Items: []schema.OrderItem{
					{ID: 1, Name: "Product A", Quantity: 2, Price: 29.99},
					{ID: 2, Name: "Product B", Quantity: 1, Price: 49.99},
				},
				Total:     109.97,
				Status:    schema.OrderDelivered,
				OrderDate: time.Date(2024, time.March, 14, 15, 30, 0, 0, time.UTC),
			},
			{
				OrderID:   "ORD002",
				AccountID: "ACC123",
				Items: []schema.OrderItem{
					{ID: 3, Name: "Product C", Quantity: 1, Price: 79.99},
				},
				Total:     79.99,
				Status:    schema.OrderProcessing,
				OrderDate: time.Date(2024, time.March, 15, 10, 15, 0, 0, time.UTC),
			},
			{
				OrderID:   "ORD003",
				AccountID: "ACC124",
				Items: []schema.OrderItem{
					{ID: 4, Name: "Product D", Quantity: 3, Price: 19.99},
				},
				Total:     59.97,
				Status:    schema.OrderDelivered,
				OrderDate: time.Date(2024, time.March, 13, 9, 45, 0, 0, time.UTC),
			},
			{
				OrderID:   "ORD004",
				AccountID: "ACC125",
				Items: []schema.OrderItem{
					{ID: 5, Name: "Product E", Quantity: 1, Price: 149.99},
				},
				Total:     149.99,
				Status:    schema.OrderShipped,
				OrderDate: time.Date(2024, time.March, 15, 8, 30, 0, 0, time.UTC),
			},
		},
	}
}
