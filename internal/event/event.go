package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cageside/fightcred/internal/domain"
)

// EventSchemaVersion is the current version of event payload schemas
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Common event types
const (
	// FightResolved fires for every resolution, admin- or poller-triggered
	FightResolved Type = "fight.resolved"
	// FightAutoResolved fires only when the poller resolved a fight from
	// the external feed; the notification sink listens to this one
	FightAutoResolved Type = "fight.autoresolved"
	// PollCycleCompleted summarizes one poller cycle
	PollCycleCompleted Type = "poll.cycle.completed"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// FightResolvedPayloadV1 is the typed payload for fight resolution events
type FightResolvedPayloadV1 struct {
	FightID             uuid.UUID         `json:"fight_id"`
	EventName           string            `json:"event_name"`
	Fighter1            string            `json:"fighter1"`
	Fighter2            string            `json:"fighter2"`
	Winner              string            `json:"winner"`
	FinishType          domain.FinishType `json:"finish_type"`
	Method              domain.Method     `json:"method"`
	PredictionsResolved int               `json:"predictions_resolved"`
	Timestamp           int64             `json:"timestamp"`
}

// PollCyclePayloadV1 is the typed payload for poll cycle summary events
type PollCyclePayloadV1 struct {
	PendingFights  int   `json:"pending_fights"`
	FightsResolved int   `json:"fights_resolved"`
	Errors         int   `json:"errors"`
	Timestamp      int64 `json:"timestamp"`
}

// NewFightResolvedEvent creates a fight resolved event with type-safe payload
func NewFightResolvedEvent(fight *domain.Fight, outcome domain.FightOutcome, predictionsResolved int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FightResolved,
		Payload: FightResolvedPayloadV1{
			FightID:             fight.ID,
			EventName:           fight.EventName,
			Fighter1:            fight.Fighter1,
			Fighter2:            fight.Fighter2,
			Winner:              outcome.Winner,
			FinishType:          outcome.FinishType,
			Method:              outcome.Method,
			PredictionsResolved: predictionsResolved,
			Timestamp:           time.Now().Unix(),
		},
	}
}

// NewFightAutoResolvedEvent creates the poller-path variant of the
// resolution event
func NewFightAutoResolvedEvent(fight *domain.Fight, outcome domain.FightOutcome, predictionsResolved int) Event {
	evt := NewFightResolvedEvent(fight, outcome, predictionsResolved)
	evt.Type = FightAutoResolved
	return evt
}

// NewPollCycleEvent creates a poll cycle summary event
func NewPollCycleEvent(pending, resolved, errCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PollCycleCompleted,
		Payload: PollCyclePayloadV1{
			PendingFights:  pending,
			FightsResolved: resolved,
			Errors:         errCount,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers an event to all subscribers synchronously. Handler
// errors are aggregated; one failing subscriber never hides another.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for %s: %v", len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
