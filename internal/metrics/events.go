package metrics

import (
	"context"

	"github.com/cageside/fightcred/internal/event"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.FightResolved,
		event.FightAutoResolved,
		event.PollCycleCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Each resolution fires
// exactly one of fight.resolved / fight.autoresolved, so the two label
// values partition the counter by who triggered it.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.FightResolved:
		FightsResolved.WithLabelValues(SourceAdmin).Inc()
	case event.FightAutoResolved:
		FightsResolved.WithLabelValues(SourcePoller).Inc()
	case event.PollCycleCompleted:
		PollCycles.Inc()
		if payload, ok := evt.Payload.(event.PollCyclePayloadV1); ok && payload.Errors > 0 {
			PollCycleErrors.Inc()
		}
	}

	return nil
}
