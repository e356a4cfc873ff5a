// Package service orchestrates a valuation request: normalization, the
// two appraisal calculations, value selection, narrative assembly, and
// result formatting, followed by best-effort persistence and event
// publication. The arithmetic itself lives in the domain package.
package service

import (
	"context"
	"encoding/json"
	"time"

	"immowert_backend/internal/events"
	"immowert_backend/internal/valuation/domain"
	"immowert_backend/internal/valuation/repository"
	"immowert_backend/internal/valuation/transport"
	"immowert_backend/platform/logger"

	"github.com/google/uuid"
)

// SubmissionStore persists valuation submissions. Failures are logged
// and suppressed; a valuation response is never blocked by storage.
type SubmissionStore interface {
	Create(ctx context.Context, s repository.Submission) error
	ListRecent(ctx context.Context, limit int) ([]repository.Submission, error)
}

// Service runs valuations and coordinates the collaborators around them.
type Service struct {
	store          SubmissionStore
	bus            events.Bus
	log            *logger.Logger
	evaluationYear int
}

// New creates a valuation service. The evaluation year is injected so
// the depreciation arithmetic stays deterministic under test.
func New(store SubmissionStore, bus events.Bus, log *logger.Logger, evaluationYear int) *Service {
	return &Service{
		store:          store,
		bus:            bus,
		log:            log,
		evaluationYear: evaluationYear,
	}
}

// Evaluate runs the full valuation pipeline for one request. Validation
// failures return before any side effect; persistence and notification
// failures never reach the caller.
func (s *Service) Evaluate(ctx context.Context, req transport.EvaluateRequest) (transport.ValuationResult, error) {
	in, err := Normalize(req)
	if err != nil {
		return transport.ValuationResult{}, err
	}

	cost := domain.ComputeCostValue(in, s.evaluationYear)
	income := domain.ComputeIncomeValue(in, cost.LandValue)
	reported := domain.SelectReportedValue(in.Type, cost.CostValue, income.IncomeValue)

	result := FormatResult(in, cost, reported, s.evaluationYear)

	s.log.WithContext(ctx).ValuationEvent(string(in.Type), in.City, reported)

	submissionID := uuid.New()
	s.persist(ctx, submissionID, in, result)

	s.bus.Publish(ctx, events.ValuationCompleted{
		BaseEvent:       events.NewBaseEvent(),
		SubmissionID:    submissionID,
		PropertyType:    string(in.Type),
		Address:         in.Address,
		City:            in.City,
		ContactName:     in.ContactName,
		ContactEmail:    in.ContactEmail,
		ReportedValue:   reported,
		Price:           result.Price,
		Location:        result.Location,
		Condition:       result.Condition,
		IncreaseFactors: result.PriceIncreaseFactors,
		DecreaseFactors: result.PriceDecreaseFactors,
		DefaultsApplied: in.DefaultsApplied,
	})

	return result, nil
}

// persist stores the submission best-effort. Marshal and insert errors
// are logged and swallowed.
func (s *Service) persist(ctx context.Context, id uuid.UUID, in domain.PropertyInput, result transport.ValuationResult) {
	input, err := json.Marshal(in)
	if err != nil {
		s.log.DatabaseError("marshal_submission_input", err)
		return
	}
	output, err := json.Marshal(result)
	if err != nil {
		s.log.DatabaseError("marshal_submission_result", err)
		return
	}

	submission := repository.Submission{
		ID:              id,
		PropertyType:    string(in.Type),
		Address:         in.Address,
		City:            in.City,
		Price:           result.Price,
		Input:           input,
		Result:          output,
		DefaultsApplied: in.DefaultsApplied,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.store.Create(ctx, submission); err != nil {
		s.log.DatabaseError("create_submission", err)
	}
}

// ListRecent returns summaries of the most recent submissions.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]transport.SubmissionSummary, error) {
	submissions, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]transport.SubmissionSummary, 0, len(submissions))
	for _, sub := range submissions {
		summaries = append(summaries, transport.SubmissionSummary{
			ID:              sub.ID.String(),
			PropertyType:    sub.PropertyType,
			Address:         sub.Address,
			City:            sub.City,
			Price:           sub.Price,
			DefaultsApplied: sub.DefaultsApplied,
			CreatedAt:       sub.CreatedAt,
		})
	}
	return summaries, nil
}
