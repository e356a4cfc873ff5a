package service

import (
	"context"
	"errors"
	"testing"

	"immowert_backend/internal/events"
	"immowert_backend/internal/valuation/repository"
	"immowert_backend/internal/valuation/transport"
	"immowert_backend/platform/logger"
)

type fakeStore struct {
	created   []repository.Submission
	createErr error
	listed    []repository.Submission
}

func (f *fakeStore) Create(ctx context.Context, s repository.Submission) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, s)
	return nil
}

func (f *fakeStore) ListRecent(ctx context.Context, limit int) ([]repository.Submission, error) {
	return f.listed, nil
}

type fakeBus struct {
	published []events.Event
}

func (f *fakeBus) Publish(ctx context.Context, event events.Event) {
	f.published = append(f.published, event)
}

func (f *fakeBus) PublishSync(ctx context.Context, event events.Event) error {
	f.published = append(f.published, event)
	return nil
}

func (f *fakeBus) Subscribe(eventName string, handler events.Handler) {}

func newTestService(store *fakeStore, bus *fakeBus) *Service {
	return New(store, bus, logger.New("development"), 2025)
}

func TestEvaluate_SingleFamilyEndToEnd(t *testing.T) {
	store := &fakeStore{}
	bus := &fakeBus{}
	svc := newTestService(store, bus)

	result, err := svc.Evaluate(context.Background(), validSingleFamilyRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Price != "Geschätzter Verkehrswert: 360.000 €" {
		t.Fatalf("unexpected price: %q", result.Price)
	}
	if len(result.PriceIncreaseFactors) != 3 || len(result.PriceDecreaseFactors) != 3 {
		t.Fatalf("expected factor lists of length 3, got %d and %d",
			len(result.PriceIncreaseFactors), len(result.PriceDecreaseFactors))
	}

	if len(store.created) != 1 {
		t.Fatalf("expected one stored submission, got %d", len(store.created))
	}
	sub := store.created[0]
	if sub.PropertyType != "einfamilienhaus" || sub.City != "Köln" {
		t.Fatalf("unexpected submission: %+v", sub)
	}
	if sub.Price != result.Price {
		t.Fatalf("expected stored price %q, got %q", result.Price, sub.Price)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected one published event, got %d", len(bus.published))
	}
	completed, ok := bus.published[0].(events.ValuationCompleted)
	if !ok {
		t.Fatalf("expected ValuationCompleted event, got %T", bus.published[0])
	}
	if completed.ReportedValue != 360000 {
		t.Fatalf("expected reported value 360000, got %v", completed.ReportedValue)
	}
	if completed.SubmissionID != sub.ID {
		t.Fatal("expected event to carry the stored submission ID")
	}
}

func TestEvaluate_MultiFamilyReportsIncomeValue(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeBus{})

	req := transport.EvaluateRequest{
		Address:         "Mietshausweg 2",
		City:            "Köln",
		ZipCode:         "50667",
		PropertyType:    "mehrfamilienhaus",
		PlotSize:        "500",
		SoilValue:       "370",
		LivingArea:      "400",
		UnitCount:       "6",
		AnnualGrossRent: "36000",
		OperatingCosts:  "5000",
		VacancyRate:     "5",
	}

	result, err := svc.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Price != "Geschätzter Verkehrswert: 870.000 €" {
		t.Fatalf("expected income-based value, got %q", result.Price)
	}
}

func TestEvaluate_ValidationErrorHasNoSideEffects(t *testing.T) {
	store := &fakeStore{}
	bus := &fakeBus{}
	svc := newTestService(store, bus)

	req := validSingleFamilyRequest()
	req.Address = ""

	_, err := svc.Evaluate(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(store.created) != 0 {
		t.Fatalf("expected no stored submission, got %d", len(store.created))
	}
	if len(bus.published) != 0 {
		t.Fatalf("expected no published event, got %d", len(bus.published))
	}
}

func TestEvaluate_StoreFailureDoesNotBlockResponse(t *testing.T) {
	store := &fakeStore{createErr: errors.New("connection refused")}
	bus := &fakeBus{}
	svc := newTestService(store, bus)

	result, err := svc.Evaluate(context.Background(), validSingleFamilyRequest())
	if err != nil {
		t.Fatalf("expected valuation to succeed despite store failure, got %v", err)
	}
	if result.Price == "" {
		t.Fatal("expected a formatted price")
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected event despite store failure, got %d", len(bus.published))
	}
}

func TestListRecent_MapsSummaries(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeBus{})

	if _, err := svc.Evaluate(context.Background(), validSingleFamilyRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.listed = store.created

	summaries, err := svc.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected one summary, got %d", len(summaries))
	}
	if summaries[0].PropertyType != "einfamilienhaus" || summaries[0].Price == "" {
		t.Fatalf("unexpected summary: %+v", summaries[0])
	}
}
