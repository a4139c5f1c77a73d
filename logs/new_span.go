package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan derives a named span from the one carried by ctx.
type NewSpan func(ctx context.Context, name string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, name string) (context.Context, Span) {
		parent, _ := ctx.Value(SpanKey).(Span)
		span := Span(name + "." + rand.Text()[:8])
		ctx = context.WithValue(ctx, SpanKey, span)
		if parent != "" {
			logger.DebugContext(ctx, "new span", "parent", parent)
		} else {
			logger.DebugContext(ctx, "new span")
		}
		return ctx, span
	}
}
