package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cageside/fightcred/internal/poller"
	"github.com/cageside/fightcred/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Poller *poller.Poller
	DBPool *pgxpool.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Result poller (finish the in-flight cycle)
// 3. Database pool (after nothing can issue queries)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedToStop, "error", err)
	}
	slog.Info(LogMsgServerStopped)

	if components.Poller != nil {
		components.Poller.Stop()
		slog.Info(LogMsgPollerStopped)
	}

	components.DBPool.Close()
	slog.Info(LogMsgDatabasePoolClosed)
}
