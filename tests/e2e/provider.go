//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// FakeProvider mimics the hosted checkout API closely enough for the payment client.
type FakeProvider struct {
	*httptest.Server

	mu        sync.Mutex
	seq       int
	byID      map[string]*fakeCheckout
	byRef     map[string]string
	down      bool
	gets      int
	lastSpent map[string]float64
}

type fakeCheckout struct {
	ID        string  `json:"id"`
	Reference string  `json:"checkout_reference"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	URL       string  `json:"hosted_checkout_url"`
}

func NewFakeProvider() *FakeProvider {
	p := &FakeProvider{
		byID:      map[string]*fakeCheckout{},
		byRef:     map[string]string{},
		lastSpent: map[string]float64{},
	}
	p.Server = httptest.NewServer(http.HandlerFunc(p.serve))
	return p
}

func (p *FakeProvider) serve(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.down {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
		return
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/checkouts":
		var body struct {
			Amount    float64 `json:"amount"`
			Currency  string  `json:"currency"`
			Reference string  `json:"checkout_reference"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p.seq++
		c := &fakeCheckout{
			ID:        fmt.Sprintf("chk_%d", p.seq),
			Reference: body.Reference,
			Amount:    body.Amount,
			Currency:  body.Currency,
			Status:    "PENDING",
		}
		c.URL = p.URL + "/pay/" + c.ID
		p.byID[c.ID] = c
		p.byRef[c.Reference] = c.ID
		p.lastSpent[c.Reference] = c.Amount
		writeJSON(w, http.StatusCreated, c)

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/checkouts/"):
		p.gets++
		c, ok := p.byID[strings.TrimPrefix(r.URL.Path, "/checkouts/")]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, c)

	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// SetStatus changes what the provider reports for a checkout reference.
func (p *FakeProvider) SetStatus(reference, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if id, ok := p.byRef[reference]; ok {
		p.byID[id].Status = status
	}
}

func (p *FakeProvider) SetDown(down bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.down = down
}

// Amount is the major-unit amount the checkout was opened for.
func (p *FakeProvider) Amount(reference string) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSpent[reference]
}

func (p *FakeProvider) StatusLookups() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gets
}

func (p *FakeProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byID = map[string]*fakeCheckout{}
	p.byRef = map[string]string{}
	p.lastSpent = map[string]float64{}
	p.down = false
	p.gets = 0
}
