package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/rs/zerolog"
)

// base carries the fallback logger shared by every service.
type base struct {
	logger *zerolog.Logger
}

func newBase(logger *zerolog.Logger) base {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return base{logger: logger}
}

// log prefers the request-scoped logger stored in ctx by the context
// enhancer middleware.
func (b base) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return b.logger
}

// fail logs err for operation and returns it. A missing row is logged at
// debug level since it is an expected outcome of lookups.
func (b base) fail(ctx context.Context, operation string, err error) error {
	level := zerolog.ErrorLevel
	if sqlerr.IsNotFound(err) {
		level = zerolog.DebugLevel
	}
	b.log(ctx).WithLevel(level).Err(err).Str("operation", operation).Msg("operation failed")
	return err
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return repository.DefaultLimit
	}
	return limit
}
