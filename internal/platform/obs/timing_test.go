package obs

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func useSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return rec
}

func TestTimeNestsSpans(t *testing.T) {
	rec := useSpanRecorder(t)

	outer := func() (err error) {
		ctx, done := Time(context.Background(), "outer")
		defer done(&err)

		inner := func(ctx context.Context) (err error) {
			_, done := Time(ctx, "inner")
			defer done(&err)
			return errors.New("boom")
		}
		_ = inner(ctx)
		return nil
	}
	if err := outer(); err != nil {
		t.Fatalf("outer: %v", err)
	}

	spans := rec.Ended()
	if len(spans) != 2 {
		t.Fatalf("ended spans = %d, want 2", len(spans))
	}
	byName := map[string]sdktrace.ReadOnlySpan{}
	for _, s := range spans {
		byName[s.Name()] = s
	}
	outerSpan, innerSpan := byName["outer"], byName["inner"]
	if outerSpan == nil || innerSpan == nil {
		t.Fatalf("spans = %v, want outer and inner", byName)
	}

	if outerSpan.Parent().IsValid() {
		t.Fatalf("outer parent = %v, want root span", outerSpan.Parent().SpanID())
	}
	if innerSpan.Parent().SpanID() != outerSpan.SpanContext().SpanID() {
		t.Fatalf("inner parent = %v, want %v", innerSpan.Parent().SpanID(), outerSpan.SpanContext().SpanID())
	}
	if innerSpan.SpanContext().TraceID() != outerSpan.SpanContext().TraceID() {
		t.Fatalf("inner trace = %v, want %v", innerSpan.SpanContext().TraceID(), outerSpan.SpanContext().TraceID())
	}
	if innerSpan.Status().Code != codes.Error {
		t.Fatalf("inner status = %v, want Error", innerSpan.Status().Code)
	}
	if outerSpan.Status().Code == codes.Error {
		t.Fatalf("outer status = Error, want unset")
	}
}
