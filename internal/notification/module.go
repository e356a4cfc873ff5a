// Package notification provides event handlers for sending notifications
// in response to domain events. The valuation module publishes events
// without knowing about email providers or templates; this module
// subscribes and inverts the dependency.
package notification

import (
	"context"
	"errors"

	"immowert_backend/internal/email"
	"immowert_backend/internal/events"
	"immowert_backend/platform/config"
	"immowert_backend/platform/logger"
)

// Module wires domain events to email delivery.
type Module struct {
	sender Sender
	cfg    config.NotificationConfig
	log    *logger.Logger
}

// Sender is the subset of the email sender this module needs.
type Sender interface {
	SendValuationNotification(ctx context.Context, toEmail string, n email.ValuationNotification) error
}

// New creates the notification module.
func New(sender Sender, cfg config.NotificationConfig, log *logger.Logger) *Module {
	return &Module{sender: sender, cfg: cfg, log: log}
}

// RegisterHandlers subscribes the module's handlers on the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.ValuationCompleted{}.EventName(), events.HandlerFunc(m.onValuationCompleted))
}

// onValuationCompleted emails the back-office address about a freshly
// computed valuation. Failures are logged; the bus discards the error.
func (m *Module) onValuationCompleted(ctx context.Context, event events.Event) error {
	completed, ok := event.(events.ValuationCompleted)
	if !ok {
		return errors.New("unexpected event payload for valuation.completed")
	}

	toEmail := m.cfg.GetNotifyEmailAddress()
	if toEmail == "" {
		return nil
	}

	err := m.sender.SendValuationNotification(ctx, toEmail, email.ValuationNotification{
		SubmissionID:    completed.SubmissionID.String(),
		PropertyType:    completed.PropertyType,
		Address:         completed.Address,
		City:            completed.City,
		ContactName:     completed.ContactName,
		ContactEmail:    completed.ContactEmail,
		Price:           completed.Price,
		Location:        completed.Location,
		Condition:       completed.Condition,
		IncreaseFactors: completed.IncreaseFactors,
		DecreaseFactors: completed.DecreaseFactors,
		DefaultsApplied: completed.DefaultsApplied,
	})
	if err != nil {
		m.log.EmailEvent("valuation.completed", toEmail, false, err.Error())
		return err
	}

	m.log.EmailEvent("valuation.completed", toEmail, true, "")
	return nil
}
