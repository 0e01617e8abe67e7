package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

// QueryHook logs executed SQL statements. Statements slower than slowQuery
// and failed statements are logged at warn level, the rest at debug.
type QueryHook struct {
	logger    *slog.Logger
	slowQuery time.Duration
}

func NewQueryHook(logger *slog.Logger, slowQuery time.Duration) *QueryHook {
	return &QueryHook{
		logger:    logger,
		slowQuery: slowQuery,
	}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	query, err := event.FormattedQuery()
	if err != nil {
		h.logger.Error("failed to format query", "error", err)
		return nil
	}

	duration := time.Since(event.StartTime)
	level := slog.LevelDebug
	if event.Err != nil || (h.slowQuery > 0 && duration > h.slowQuery) {
		level = slog.LevelWarn
	}

	h.logger.Log(ctx, level, "SQL query executed",
		"query", string(query),
		"duration", duration,
		"error", event.Err,
	)

	return nil
}
