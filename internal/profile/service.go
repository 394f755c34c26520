// Package profile serves the read side of user credibility: the aggregate
// profile, leaderboard, per-fighter accuracy and scoring history.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/event"
	"github.com/cageside/fightcred/internal/repository"
)

const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute

	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
	DefaultHistoryLimit     = 25
)

// Service defines the profile read interface
type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.UserProfile, error)
	FighterStats(ctx context.Context, userID uuid.UUID) ([]domain.UserFighterStat, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CredibilityLogEntry, error)
}

type service struct {
	profiles     repository.Profile
	fighterStats repository.FighterStat
	credLog      repository.CredibilityLog
	cache        *profileCache
}

// NewService creates a new profile service. When a bus is provided the
// cache drops on every resolution, since one fight touches many profiles.
func NewService(profiles repository.Profile, fighterStats repository.FighterStat, credLog repository.CredibilityLog, bus event.Bus) Service {
	s := &service{
		profiles:     profiles,
		fighterStats: fighterStats,
		credLog:      credLog,
		cache:        newProfileCache(DefaultCacheSize, DefaultCacheTTL),
	}

	if bus != nil {
		invalidate := func(ctx context.Context, evt event.Event) error {
			s.cache.Clear()
			return nil
		}
		bus.Subscribe(event.FightResolved, invalidate)
		bus.Subscribe(event.FightAutoResolved, invalidate)
	}

	return s
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if profile, ok := s.cache.Get(userID); ok {
		return profile, nil
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(userID, profile)
	return profile, nil
}

func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.UserProfile, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	profiles, err := s.profiles.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return profiles, nil
}

func (s *service) FighterStats(ctx context.Context, userID uuid.UUID) ([]domain.UserFighterStat, error) {
	stats, err := s.fighterStats.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fighter stats: %w", err)
	}
	return stats, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CredibilityLogEntry, error) {
	if limit <= 0 || limit > DefaultHistoryLimit*4 {
		limit = DefaultHistoryLimit
	}

	entries, err := s.credLog.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load credibility history: %w", err)
	}
	return entries, nil
}
