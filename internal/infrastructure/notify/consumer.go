package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var deliveryFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "regportal_notification_failures_total",
	Help: "Notification deliveries that failed, by sink.",
}, []string{"sink"})

// Sink is one consumer of registration events (mailer, announcer).
type Sink interface {
	Name() string
	Deliver(ctx context.Context, ev RegistrationCreated) error
}

// Consumer subscribes to the registration subject and fans each event out to
// every sink. A sink failure is logged and counted; it never stops the others.
type Consumer struct {
	nc    *nats.Conn
	sinks []Sink
	sub   *nats.Subscription
}

func NewConsumer(nc *nats.Conn, sinks ...Sink) *Consumer {
	return &Consumer{nc: nc, sinks: sinks}
}

// Start subscribes and delivers until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	sub, err := c.nc.Subscribe(SubjectRegistrationCreated, func(msg *nats.Msg) {
		var ev RegistrationCreated
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			log.Printf("notify: bad event payload: %v", err)
			return
		}
		for _, sink := range c.sinks {
			if err := sink.Deliver(ctx, ev); err != nil {
				deliveryFailures.WithLabelValues(sink.Name()).Inc()
				log.Printf("notify: %s delivery for registration %d: %v", sink.Name(), ev.ID, err)
			}
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", SubjectRegistrationCreated, err)
	}
	c.sub = sub

	<-ctx.Done()
	if err := sub.Drain(); err != nil {
		log.Printf("notify: consumer drain: %v", err)
	}
	return nil
}
