// AngelaMos | 2026
// handler_test.go

package commerce

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/creatorcash/internal/catalog"
	"github.com/carterperez-dev/creatorcash/internal/core"
	"github.com/carterperez-dev/creatorcash/internal/ledger"
	"github.com/carterperez-dev/creatorcash/internal/payment"
)

func newTestRouter(t *testing.T, gateway payment.Gateway) http.Handler {
	t.Helper()

	catalogSvc := catalog.NewService(catalog.NewMemoryStore(catalog.Seed()...))
	svc := NewService(
		catalogSvc,
		ledger.NewMemoryStore(),
		gateway,
		core.NewMetrics(),
		slog.New(slog.DiscardHandler),
	)

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		NewHandler(svc).RegisterRoutes(r)
	})
	return r
}

func postJSON(
	t *testing.T,
	router http.Handler,
	path string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return env
}

func tipBody() map[string]any {
	return map[string]any{
		"name":   "Carol",
		"amount": 5,
		"payment": map[string]any{
			"method":      "card",
			"card_number": "4242424242424242",
			"expiry_date": "12/30",
			"cvv":         "123",
		},
	}
}

func TestSendTipEndpointCreated(t *testing.T) {
	router := newTestRouter(t, payment.NewSimulator(1.0, 0))

	rec := postJSON(t, router, "/v1/creators/johndoe/tips", tipBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Error("success = false, want true")
	}

	var tip ledger.Tip
	if err := json.Unmarshal(env.Data, &tip); err != nil {
		t.Fatalf("decode tip: %v", err)
	}
	if tip.Amount != 5 {
		t.Errorf("amount = %v, want 5", tip.Amount)
	}
}

func TestSendTipEndpointAcceptsAtUsername(t *testing.T) {
	router := newTestRouter(t, payment.NewSimulator(1.0, 0))

	rec := postJSON(t, router, "/v1/creators/@johndoe/tips", tipBody())
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestSendTipEndpointDeclined(t *testing.T) {
	router := newTestRouter(t, payment.NewSimulator(0.0, 0))

	rec := postJSON(t, router, "/v1/creators/johndoe/tips", tipBody())
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, want 402", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	want := "Payment processing failed. Please try again."
	if env.Error == nil || env.Error.Message != want {
		t.Errorf("error = %+v, want message %q", env.Error, want)
	}
}

func TestSendTipEndpointValidation(t *testing.T) {
	router := newTestRouter(t, payment.NewSimulator(1.0, 0))

	body := tipBody()
	delete(body, "name")

	rec := postJSON(t, router, "/v1/creators/johndoe/tips", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Error == nil || !strings.Contains(env.Error.Message, "Name") {
		t.Errorf("error = %+v, want message naming the missing field", env.Error)
	}
}

func TestSendTipEndpointBelowMinimum(t *testing.T) {
	router := newTestRouter(t, payment.NewSimulator(1.0, 0))

	body := tipBody()
	body["amount"] = 0.5

	rec := postJSON(t, router, "/v1/creators/johndoe/tips", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestSendTipEndpointUnknownCreator(t *testing.T) {
	router := newTestRouter(t, payment.NewSimulator(1.0, 0))

	rec := postJSON(t, router, "/v1/creators/nobody/tips", tipBody())
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestPurchaseEndpointPhysicalWithoutShipping(t *testing.T) {
	router := newTestRouter(t, payment.NewSimulator(1.0, 0))

	rec := postJSON(t, router, "/v1/creators/johndoe/purchases", map[string]any{
		"name":       "Dave",
		"email":      "dave@example.com",
		"product_id": "2",
		"quantity":   1,
		"payment": map[string]any{
			"method":      "card",
			"card_number": "4242424242424242",
			"expiry_date": "12/30",
			"cvv":         "123",
		},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestPurchaseEndpointUnknownProduct(t *testing.T) {
	router := newTestRouter(t, payment.NewSimulator(1.0, 0))

	rec := postJSON(t, router, "/v1/creators/johndoe/purchases", map[string]any{
		"name":       "Dave",
		"email":      "dave@example.com",
		"product_id": "does-not-exist",
		"quantity":   1,
		"payment": map[string]any{
			"method":      "card",
			"card_number": "4242424242424242",
			"expiry_date": "12/30",
			"cvv":         "123",
		},
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (body %s)", rec.Code, rec.Body.String())
	}

	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Message != "product not found" {
		t.Errorf("error = %+v, want message %q", env.Error, "product not found")
	}
}

func TestListEndpointsReturnEmptyArrays(t *testing.T) {
	router := newTestRouter(t, payment.NewSimulator(1.0, 0))

	req := httptest.NewRequest(http.MethodGet, "/v1/creators/johndoe/tips", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if string(env.Data) != "[]" {
		t.Errorf("data = %s, want []", env.Data)
	}
}
