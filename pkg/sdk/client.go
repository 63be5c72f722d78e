// Package sdk provides the client-side library for talking to a running
// OrionDesk daemon over HTTP.
package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oriondesk-dev/oriondesk/pkg/schema"
)

// APIError is a non-2xx response from the daemon, carrying the HTTP
// status and the server's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Credentials identify an account for the order endpoints. AccountID and
// Email are interchangeable lookup keys; when both are set the server
// resolves by AccountID.
type Credentials struct {
	AccountID string
	Email     string
	Password  string
}

// Client is an HTTP client for the OrionDesk API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Connect builds a client for the daemon at baseURL and verifies it is
// reachable with a health check.
func Connect(baseURL string) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	if _, err := c.Health(); err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", baseURL, err)
	}
	return c, nil
}

// get performs a GET request and decodes the JSON response into out.
// Non-2xx responses are returned as *APIError.
func (c *Client) get(path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	resp, err := c.http.Get(u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			body.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: body.Error}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Health returns the daemon's health status string.
func (c *Client) Health() (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.get("/health", nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// Incidents returns the full incident collection.
func (c *Client) Incidents() ([]schema.Incident, error) {
	var out []schema.Incident
	if err := c.get("/api/incidents", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Account fetches a single account by ID. The password is checked
// server-side; the returned account never includes it.
func (c *Client) Account(id, password string) (schema.Account, error) {
	q := url.Values{}
	q.Set("password", password)

	var out schema.Account
	if err := c.get("/api/account/"+url.PathEscape(id), q, &out); err != nil {
		return schema.Account{}, err
	}
	return out, nil
}

// Orders lists every order owned by the credentialed account.
func (c *Client) Orders(creds Credentials) ([]schema.Order, error) {
	var out []schema.Order
	if err := c.get("/api/orders", creds.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Order fetches a single order by ID. The server rejects orders owned by
// a different account with a 403 *APIError.
func (c *Client) Order(orderID string, creds Credentials) (schema.Order, error) {
	var out schema.Order
	if err := c.get("/api/orders/"+url.PathEscape(orderID), creds.query(), &out); err != nil {
		return schema.Order{}, err
	}
	return out, nil
}

func (creds Credentials) query() url.Values {
	q := url.Values{}
	if creds.AccountID != "" {
		q.Set("accountId", creds.AccountID)
	}
	if creds.Email != "" {
		q.Set("email", creds.Email)
	}
	if creds.Password != "" {
		q.Set("password", creds.Password)
	}
	return q
}
