// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"immowert_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// =============================================================================
// Valuation Domain Events
// =============================================================================

// ValuationCompleted is published after a valuation has been computed and
// the response returned to the caller. Collaborators (submission store,
// email notification) subscribe to this event; their failures never reach
// the requester.
type ValuationCompleted struct {
	BaseEvent
	SubmissionID    uuid.UUID `json:"submissionId"`
	PropertyType    string    `json:"propertyType"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	ContactName     string    `json:"contactName,omitempty"`
	ContactEmail    string    `json:"contactEmail,omitempty"`
	ReportedValue   float64   `json:"reportedValue"`
	Price           string    `json:"price"`
	Location        string    `json:"location"`
	Condition       string    `json:"condition"`
	IncreaseFactors []string  `json:"increaseFactors"`
	DecreaseFactors []string  `json:"decreaseFactors"`
	DefaultsApplied []string  `json:"defaultsApplied,omitempty"`
}

func (e ValuationCompleted) EventName() string { return "valuation.completed" }
