package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"immowert_backend/internal/events"
	"immowert_backend/internal/valuation/repository"
	"immowert_backend/internal/valuation/service"
	"immowert_backend/platform/logger"
	"immowert_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type stubStore struct {
	created []repository.Submission
}

func (s *stubStore) Create(ctx context.Context, sub repository.Submission) error {
	s.created = append(s.created, sub)
	return nil
}

func (s *stubStore) ListRecent(ctx context.Context, limit int) ([]repository.Submission, error) {
	return s.created, nil
}

type stubBus struct{}

func (stubBus) Publish(ctx context.Context, event events.Event) {}
func (stubBus) PublishSync(ctx context.Context, event events.Event) error {
	return nil
}
func (stubBus) Subscribe(eventName string, handler events.Handler) {}

func newTestEngine(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.New(store, stubBus{}, logger.New("development"), 2025)
	h := New(svc, validator.New())

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1/valuations"))
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/valuations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"address": "Musterstraße 1",
	"city": "Köln",
	"zipCode": "50667",
	"propertyType": "einfamilienhaus",
	"plotSize": "500",
	"livingArea": "120"
}`

func TestEvaluate_ReturnsValuation(t *testing.T) {
	store := &stubStore{}
	rec := postJSON(t, newTestEngine(store), validBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result struct {
		Price                string   `json:"price"`
		Location             string   `json:"location"`
		Condition            string   `json:"condition"`
		PriceIncreaseFactors []string `json:"priceIncreaseFactors"`
		PriceDecreaseFactors []string `json:"priceDecreaseFactors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Price != "Geschätzter Verkehrswert: 360.000 €" {
		t.Fatalf("unexpected price: %q", result.Price)
	}
	if !strings.HasPrefix(result.Location, "Lage in Köln:") {
		t.Fatalf("unexpected location: %q", result.Location)
	}
	if len(result.PriceIncreaseFactors) != 3 || len(result.PriceDecreaseFactors) != 3 {
		t.Fatalf("expected factor lists of length 3, got %d and %d",
			len(result.PriceIncreaseFactors), len(result.PriceDecreaseFactors))
	}
	if len(store.created) != 1 {
		t.Fatalf("expected one stored submission, got %d", len(store.created))
	}
}

func TestEvaluate_MissingRequiredFields(t *testing.T) {
	store := &stubStore{}
	rec := postJSON(t, newTestEngine(store), `{"city": "Köln"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "Pflichtfelder fehlen" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
	if len(resp.Details) == 0 {
		t.Fatal("expected missing field names in details")
	}
	if len(store.created) != 0 {
		t.Fatalf("expected no stored submission, got %d", len(store.created))
	}
}

func TestEvaluate_MalformedJSON(t *testing.T) {
	rec := postJSON(t, newTestEngine(&stubStore{}), `{"address": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEvaluate_RejectsUnknownPropertyType(t *testing.T) {
	body := strings.Replace(validBody, "einfamilienhaus", "schloss", 1)
	rec := postJSON(t, newTestEngine(&stubStore{}), body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestListRecent_ReturnsStoredSubmissions(t *testing.T) {
	store := &stubStore{}
	engine := newTestEngine(store)

	if rec := postJSON(t, engine, validBody); rec.Code != http.StatusOK {
		t.Fatalf("seed request failed: %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/valuations", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Items []struct {
			PropertyType string `json:"propertyType"`
			Price        string `json:"price"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(resp.Items))
	}
	if resp.Items[0].PropertyType != "einfamilienhaus" {
		t.Fatalf("unexpected item: %+v", resp.Items[0])
	}
}
