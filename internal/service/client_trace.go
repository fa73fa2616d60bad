package service

import (
	"context"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/utils"
)

// withTrace makes sure ctx carries a trace id and returns a logger bound to
// it. The logger is also stored in the returned context, so adapters and
// repositories reached from ctx log with the same trace id.
func withTrace(ctx context.Context, base *logger.Logger, op string) (context.Context, *logger.Logger) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = utils.NewUUIDGenerator().Generate()
		ctx = utils.WithTraceID(ctx, traceID)
	}

	log := &logger.Logger{Logger: base.With().Str("trace_id", traceID).Str("op", op).Logger()}
	return log.WithContext(ctx), log
}
