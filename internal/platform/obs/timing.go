package obs

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

const tracerName = "site-finder-service"

// Time starts a span and a timer for op. The returned context carries the
// span so nested calls become its children; pass it on to downstream work.
// The returned func ends both and logs the duration, plus the error when
// *errp is non-nil.
func Time(ctx context.Context, name string) (context.Context, func(errp *error)) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)
	ctx, span := otel.Tracer(tracerName).Start(ctx, name)

	return ctx, func(errp *error) {
		dur := time.Since(start)
		defer span.End()

		if errp != nil && *errp != nil {
			span.RecordError(*errp)
			span.SetStatus(codes.Error, (*errp).Error())
			slog.WarnContext(ctx, "op failed", "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		slog.DebugContext(ctx, "op done", "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds())
	}
}
