package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cageside/fightcred/internal/domain"
)

func resolvedFight() *domain.Fight {
	return &domain.Fight{
		ID:        uuid.New(),
		EventName: "UFC 300",
		Fighter1:  "Alex Pereira",
		Fighter2:  "Jamahal Hill",
	}
}

func TestMemoryBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(FightResolved, func(ctx context.Context, evt Event) error {
		received = append(received, evt)
		return nil
	})

	evt := NewFightResolvedEvent(resolvedFight(), domain.FightOutcome{
		Winner:     "Alex Pereira",
		FinishType: domain.FinishTypeFinish,
		Method:     domain.MethodTKOKO,
	}, 3)

	require.NoError(t, bus.Publish(context.Background(), evt))
	require.Len(t, received, 1)

	payload, ok := received[0].Payload.(FightResolvedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "Alex Pereira", payload.Winner)
	assert.Equal(t, 3, payload.PredictionsResolved)
	assert.Equal(t, EventSchemaVersion, received[0].Version)
}

func TestMemoryBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewPollCycleEvent(0, 0, 0)))
}

func TestMemoryBus_FailingHandlerDoesNotHideSiblings(t *testing.T) {
	bus := NewMemoryBus()

	calls := 0
	bus.Subscribe(PollCycleCompleted, func(ctx context.Context, evt Event) error {
		calls++
		return errors.New("sink down")
	})
	bus.Subscribe(PollCycleCompleted, func(ctx context.Context, evt Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewPollCycleEvent(2, 1, 0))
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestNewFightAutoResolvedEvent_SharesPayloadShape(t *testing.T) {
	fight := resolvedFight()
	outcome := domain.FightOutcome{Winner: "Jamahal Hill", FinishType: domain.FinishTypeDecision, Method: domain.MethodDecision}

	evt := NewFightAutoResolvedEvent(fight, outcome, 7)

	assert.Equal(t, FightAutoResolved, evt.Type)
	payload, ok := evt.Payload.(FightResolvedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, fight.ID, payload.FightID)
	assert.Equal(t, "Jamahal Hill", payload.Winner)
}
