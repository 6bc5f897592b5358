package service

import (
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

var (
	tracer = otel.Tracer("go-sales-rest/internal/service")
	meter  = otel.Meter("go-sales-rest/internal/service")

	salesCreated  metric.Int64Counter
	salesRejected metric.Int64Counter
	unitsSold     metric.Int64Counter
)

func init() {
	salesCreated = counter("sales.created", metric.WithDescription("Sales committed"))
	salesRejected = counter("sales.rejected", metric.WithDescription("Sale requests rejected, by reason"))
	unitsSold = counter("sales.units", metric.WithDescription("Product units sold"), metric.WithUnit("{unit}"))
}

func counter(name string, opts ...metric.Int64CounterOption) metric.Int64Counter {
	c, err := meter.Int64Counter(name, opts...)
	if err != nil {
		log.Printf("metrics: %s: %v", name, err)
		return noop.Int64Counter{}
	}
	return c
}

// Notifier receives domain events once they are committed.
type Notifier interface {
	Publish(eventType string, data interface{})
}

type noopNotifier struct{}

func (noopNotifier) Publish(string, interface{}) {}

func notifierOrNoop(n Notifier) Notifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
