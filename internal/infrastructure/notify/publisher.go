package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"

	"regportal/internal/domain/entities"
	"regportal/internal/ports/output"
)

var (
	_ output.Notifier = (*Publisher)(nil)
	_ output.Notifier = (*LogNotifier)(nil)
)

// Publisher implements output.Notifier by publishing the event to NATS.
type Publisher struct {
	nc *nats.Conn
}

// NewPublisher connects to the NATS server at url.
func NewPublisher(url string) (*Publisher, error) {
	nc, err := nats.Connect(url, nats.Name("regportal"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &Publisher{nc: nc}, nil
}

func (p *Publisher) RegistrationCreated(ctx context.Context, reg entities.Registration) error {
	payload, err := json.Marshal(fromRegistration(reg))
	if err != nil {
		return fmt.Errorf("marshal registration event: %w", err)
	}
	if err := p.nc.Publish(SubjectRegistrationCreated, payload); err != nil {
		return fmt.Errorf("publish %s: %w", SubjectRegistrationCreated, err)
	}
	return nil
}

// Close drains the connection so in-flight events are flushed.
func (p *Publisher) Close() {
	if err := p.nc.Drain(); err != nil {
		log.Printf("notify: drain: %v", err)
	}
}

// Conn exposes the underlying connection for consumers sharing it.
func (p *Publisher) Conn() *nats.Conn {
	return p.nc
}

// LogNotifier is the degraded-mode notifier used when NATS is not
// configured: it records the event in the log and nothing else.
type LogNotifier struct{}

func (LogNotifier) RegistrationCreated(ctx context.Context, reg entities.Registration) error {
	log.Printf("notify: registration %d for %s (no bus configured, skipping delivery)", reg.ID, reg.EventName)
	return nil
}
