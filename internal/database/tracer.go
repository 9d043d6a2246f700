package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type slowQueryKey struct{}

type slowQueryStart struct {
	sql  string
	args int
	at   time.Time
}

// slowQueryTracer logs statements that take longer than threshold.
type slowQueryTracer struct {
	logger    *zerolog.Logger
	threshold time.Duration
	now       func() time.Time
}

func newSlowQueryTracer(logger *zerolog.Logger, threshold time.Duration) *slowQueryTracer {
	return &slowQueryTracer{
		logger:    logger,
		threshold: threshold,
		now:       time.Now,
	}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryKey{}, slowQueryStart{
		sql:  data.SQL,
		args: len(data.Args),
		at:   t.now(),
	})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(slowQueryKey{}).(slowQueryStart)
	if !ok {
		return
	}

	elapsed := t.now().Sub(start.at)
	if elapsed < t.threshold {
		return
	}

	// Arguments are not logged; they may carry user emails and passwords.
	e := t.logger.Warn().
		Str("sql", start.sql).
		Int("args", start.args).
		Dur("duration", elapsed).
		Dur("threshold", t.threshold)
	if data.Err != nil {
		e = e.Err(data.Err)
	}
	e.Msg("slow query")
}
