package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/oriondesk-dev/oriondesk/internal/store"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	s := store.New(nil, store.NewEstimatorWithSource(func(n int) int { return 0 }))
	return New(s, "*")
}

func TestRoutesRegistered(t *testing.T) {
	srv := newTestServer()

	paths := []string{
		"/health",
		"/api/incidents",
		"/api/account/ACC123?password=Sundar@123",
		"/api/orders?accountId=ACC123&password=Sundar@123",
		"/api/orders/ORD001?accountId=ACC123&password=Sundar@123",
	}
	for _, path := range paths {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer()

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("Expected Allow-Origin *, got %q", origin)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer()

	req, _ := http.NewRequest("OPTIONS", "/api/incidents", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for preflight, got %d", w.Code)
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	srv := newTestServer()

	req, _ := http.NewRequest("GET", "/api/nope", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "API route not found" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestCustomCORSOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := store.New(nil, store.NewEstimatorWithSource(func(n int) int { return 0 }))
	srv := New(s, "https://portal.example.com")

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "https://portal.example.com" {
		t.Errorf("Expected configured origin, got %q", origin)
	}
}
