// Package poller runs the recurring result-resolution task: it discovers
// fights waiting on a result, matches them against the external scoreboard
// and hands authoritative outcomes to the resolution engine.
package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/event"
	"github.com/cageside/fightcred/internal/feed"
	"github.com/cageside/fightcred/internal/logger"
	"github.com/cageside/fightcred/internal/matching"
	"github.com/cageside/fightcred/internal/repository"
	"github.com/cageside/fightcred/internal/resolution"
)

// errNoMatch marks a fight the feed could not settle this cycle; it is
// skipped silently and becomes eligible again on the next tick
var errNoMatch = errors.New("no feed match")

// FeedClient is the slice of the feed client the poller consumes
type FeedClient interface {
	FetchScoreboard(ctx context.Context) (*feed.Scoreboard, error)
}

// Poller owns the recurring result-check task. Start launches the loop,
// TriggerNow forces an extra cycle, Stop prevents future ticks and waits
// for an in-flight cycle to finish.
type Poller struct {
	fights   repository.Fight
	feed     FeedClient
	engine   resolution.Service
	bus      event.Bus
	interval time.Duration

	trigger  chan struct{}
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a new result poller
func New(fights repository.Fight, feedClient FeedClient, engine resolution.Service, bus event.Bus, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		fights:   fights,
		feed:     feedClient,
		engine:   engine,
		bus:      bus,
		interval: interval,
		trigger:  make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop with an immediate first cycle
func (p *Poller) Start(ctx context.Context) {
	go p.run(ctx)
}

// TriggerNow requests an extra cycle without waiting for the next tick.
// A cycle already queued absorbs the request.
func (p *Poller) TriggerNow() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// Stop prevents future ticks and blocks until an in-flight cycle finishes
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	<-p.done
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	log := logger.FromContext(ctx)
	log.Info(LogMsgPollerStarted, "interval", p.interval.String())

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.pollOnce(ctx)

	for {
		select {
		case <-p.quit:
			log.Info(LogMsgPollerStopped)
			return
		case <-ctx.Done():
			log.Info(LogMsgPollerStopped)
			return
		case <-p.trigger:
			p.pollOnce(ctx)
		case <-ticker.C:
			p.pollOnce(ctx)
		}
	}
}

// pollOnce performs one polling cycle. Nothing in here may take the loop
// down: feed failures degrade to a skipped cycle and per-fight errors are
// collected.
func (p *Poller) pollOnce(ctx context.Context) {
	ctx = logger.WithCycleID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	pending, err := p.fights.ListPending(ctx, time.Now().UTC())
	if err != nil {
		log.Error("Failed to list pending fights", "error", err)
		p.publishCycle(ctx, 0, 0, 1)
		return
	}
	if len(pending) == 0 {
		log.Debug(LogMsgNoPendingFights)
		return
	}

	log.Info(LogMsgCycleStarted, "pending_fights", len(pending))

	// One scoreboard fetch per cycle, not one per fight
	scoreboard, err := p.feed.FetchScoreboard(ctx)
	if err != nil {
		log.Warn(LogMsgFeedUnavailable, "error", err)
		p.publishCycle(ctx, len(pending), 0, 1)
		return
	}

	resolved := 0
	errCount := 0
	for i := range pending {
		fight := pending[i]
		err := p.resolveFromFeed(ctx, &fight, scoreboard)
		switch {
		case err == nil:
			resolved++
		case errors.Is(err, errNoMatch):
			log.Debug(LogMsgNoFeedMatch, "fight_id", fight.ID, "event_name", fight.EventName)
		default:
			errCount++
			log.Error(LogMsgFightResolveError, "fight_id", fight.ID, "error", err)
		}
	}

	log.Info(LogMsgCycleCompleted,
		"pending_fights", len(pending),
		"resolved", resolved,
		"errors", errCount)

	p.publishCycle(ctx, len(pending), resolved, errCount)
}

// resolveFromFeed settles one fight against the scoreboard. A panic while
// handling one fight is recovered and reported as that fight's error.
func (p *Poller) resolveFromFeed(ctx context.Context, fight *domain.Fight, scoreboard *feed.Scoreboard) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgFightPanic, "fight_id", fight.ID, "panic", r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	bout, ok := p.findBout(fight, scoreboard)
	if !ok {
		return errNoMatch
	}

	if !bout.Completed() {
		return errNoMatch
	}
	feedWinner, ok := bout.Winner()
	if !ok {
		return errNoMatch
	}

	// Map the feed's winner back onto one of our two canonical names;
	// without a confident mapping the fight waits for an admin
	winner := ""
	switch {
	case matching.NamesMatch(feedWinner.Name(), fight.Fighter1):
		winner = fight.Fighter1
	case matching.NamesMatch(feedWinner.Name(), fight.Fighter2):
		winner = fight.Fighter2
	default:
		return errNoMatch
	}

	method, finishType := matching.NormalizeMethod(bout.MethodText())
	if method == domain.MethodDraw || method == domain.MethodNoContest {
		// A winner flag alongside a draw/nc description is feed noise;
		// leave these for the admin path
		return errNoMatch
	}

	outcome := domain.FightOutcome{
		Winner:     winner,
		FinishType: finishType,
		Method:     method,
	}

	summary, err := p.engine.ResolveFight(ctx, fight.ID, outcome, resolution.SourcePoller)
	if err != nil {
		// Lost the race against an admin resolve; nothing left to do
		if errors.Is(err, domain.ErrFightAlreadyResolved) {
			return errNoMatch
		}
		return err
	}

	logger.FromContext(ctx).Info(LogMsgFightAutoResolved,
		"fight_id", fight.ID,
		"winner", winner,
		"method", method,
		"predictions_resolved", summary.PredictionsResolved)
	return nil
}

// findBout locates the fight's bout on the scoreboard: first the event by
// name or date proximity, then the competition whose two competitors both
// match the fight's fighters.
func (p *Poller) findBout(fight *domain.Fight, scoreboard *feed.Scoreboard) (feed.Competition, bool) {
	for _, evt := range scoreboard.Events {
		feedDate, _ := evt.StartTime()
		if !matching.EventsMatch(fight.EventName, fight.ScheduledAt, evt.Name, feedDate) {
			continue
		}

		for _, bout := range evt.Competitions {
			if boutMatchesFight(bout, fight) {
				return bout, true
			}
		}
	}
	return feed.Competition{}, false
}

// boutMatchesFight requires both competitor names to match the fight's two
// fighters, in either corner order
func boutMatchesFight(bout feed.Competition, fight *domain.Fight) bool {
	if len(bout.Competitors) != 2 {
		return false
	}
	a, b := bout.Competitors[0].Name(), bout.Competitors[1].Name()
	straight := matching.NamesMatch(a, fight.Fighter1) && matching.NamesMatch(b, fight.Fighter2)
	crossed := matching.NamesMatch(a, fight.Fighter2) && matching.NamesMatch(b, fight.Fighter1)
	return straight || crossed
}

func (p *Poller) publishCycle(ctx context.Context, pending, resolved, errCount int) {
	if err := p.bus.Publish(ctx, event.NewPollCycleEvent(pending, resolved, errCount)); err != nil {
		logger.FromContext(ctx).Debug("Failed to publish poll cycle event", "error", err)
	}
}
