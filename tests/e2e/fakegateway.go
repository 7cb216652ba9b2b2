//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"tripcart/internal/infra/gateway"

	"github.com/google/uuid"
)

// FakeGateway stands in for the Mercado Pago API so checkout and webhook
// flows run against a local HTTP server instead of the real thing. Tests
// register payments on it and flip it into failure mode per scenario.
type FakeGateway struct {
	Server *httptest.Server

	mu             sync.Mutex
	failPreference bool
	preferences    map[string]string // preference id -> external reference
	payments       map[string]gateway.Payment
}

func NewFakeGateway() *FakeGateway {
	fg := &FakeGateway{
		preferences: make(map[string]string),
		payments:    make(map[string]gateway.Payment),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /checkout/preferences", fg.handleCreatePreference)
	mux.HandleFunc("GET /v1/payments/", fg.handleGetPayment)
	fg.Server = httptest.NewServer(mux)

	return fg
}

func (fg *FakeGateway) Close() {
	fg.Server.Close()
}

// FailNextPreferences makes preference creation return HTTP 400 until reset.
func (fg *FakeGateway) FailNextPreferences(fail bool) {
	fg.mu.Lock()
	defer fg.mu.Unlock()
	fg.failPreference = fail
}

// RegisterPayment makes a payment visible to subsequent lookups, simulating
// the buyer completing (or abandoning) the hosted checkout.
func (fg *FakeGateway) RegisterPayment(p gateway.Payment) {
	fg.mu.Lock()
	defer fg.mu.Unlock()
	fg.payments[strconv.FormatInt(p.ID, 10)] = p
}

func (fg *FakeGateway) handleCreatePreference(w http.ResponseWriter, r *http.Request) {
	fg.mu.Lock()
	defer fg.mu.Unlock()

	if fg.failPreference {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "invalid items",
			"status":  400,
		})
		return
	}

	var req gateway.PreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	prefID := "pref-" + uuid.New().String()
	fg.preferences[prefID] = req.ExternalReference

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(gateway.Preference{
		ID:                prefID,
		InitPoint:         fg.Server.URL + "/init/" + prefID,
		SandboxInitPoint:  fg.Server.URL + "/sandbox/" + prefID,
		ExternalReference: req.ExternalReference,
	})
}

func (fg *FakeGateway) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	fg.mu.Lock()
	defer fg.mu.Unlock()

	paymentID := strings.TrimPrefix(r.URL.Path, "/v1/payments/")
	payment, ok := fg.payments[paymentID]
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Payment not found",
			"status":  404,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payment)
}
