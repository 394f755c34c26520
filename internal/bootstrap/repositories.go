package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cageside/fightcred/internal/database/postgres"
	"github.com/cageside/fightcred/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Fight          repository.Fight
	Prediction     repository.Prediction
	Profile        repository.Profile
	FighterStat    repository.FighterStat
	CredibilityLog repository.CredibilityLog
}

// InitializeRepositories creates all repository implementations over the
// shared connection pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Fight:          postgres.NewFightRepository(dbPool),
		Prediction:     postgres.NewPredictionRepository(dbPool),
		Profile:        postgres.NewProfileRepository(dbPool),
		FighterStat:    postgres.NewFighterStatRepository(dbPool),
		CredibilityLog: postgres.NewCredibilityLogRepository(dbPool),
	}
}
