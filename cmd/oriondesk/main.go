package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/oriondesk-dev/oriondesk/pkg/sdk"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	addr := os.Getenv("ORIONDESK_ADDR")
	if addr == "" {
		addr = "http://localhost:3000"
	}

	client, err := sdk.Connect(addr)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", addr, err)
	}

	command := strings.ToUpper(os.Args[1])
	args := os.Args[2:]

	switch command {
	case "HEALTH":
		status, err := client.Health()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(status)

	case "INCIDENTS":
		incidents, err := client.Incidents()
		if err != nil {
			log.Fatal(err)
		}
		printJSON(incidents)

	case "ACCOUNT":
		if len(args) < 2 {
			log.Fatal("Usage: oriondesk ACCOUNT <accountID> <password>")
		}
		account, err := client.Account(args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(account)

	case "ORDERS":
		if len(args) < 2 {
			log.Fatal("Usage: oriondesk ORDERS <accountID-or-email> <password>")
		}
		orders, err := client.Orders(credentials(args[0], args[1]))
		if err != nil {
			log.Fatal(err)
		}
		printJSON(orders)

	case "ORDER":
		if len(args) < 3 {
			log.Fatal("Usage: oriondesk ORDER <orderID> <accountID-or-email> <password>")
		}
		order, err := client.Order(args[0], credentials(args[1], args[2]))
		if err != nil {
			log.Fatal(err)
		}
		printJSON(order)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

// credentials builds SDK credentials from a single identifier argument.
// Anything containing '@' is treated as an email, matching how the API
// accounts distinguish the two keys in practice.
func credentials(identifier, password string) sdk.Credentials {
	creds := sdk.Credentials{Password: password}
	if strings.Contains(identifier, "@") {
		creds.Email = identifier
	} else {
		creds.AccountID = identifier
	}
	return creds
}

func printUsage() {
	fmt.Println("OrionDesk CLI - client for the OrionDesk mock API")
	fmt.Println("\nUsage:")
	fmt.Println("  oriondesk HEALTH")
	fmt.Println("  oriondesk INCIDENTS")
	fmt.Println("  oriondesk ACCOUNT <accountID> <password>")
	fmt.Println("  oriondesk ORDERS <accountID-or-email> <password>")
	fmt.Println("  oriondesk ORDER <orderID> <accountID-or-email> <password>")
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  ORIONDESK_ADDR    Base URL of the daemon (default: http://localhost:3000)")
}

func printJSON(v any) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}
