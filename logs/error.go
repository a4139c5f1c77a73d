package logs

import (
	"context"
	"fmt"
)

// SpanError annotates an error with the span it happened in.
type SpanError struct {
	Span Span
	Err  error
}

func (s *SpanError) Error() string {
	return fmt.Sprintf("%v (span: %s)", s.Err, s.Span)
}

func (s *SpanError) Unwrap() error {
	return s.Err
}

// WrapSpan returns err unchanged when ctx carries no span or err already has one.
func WrapSpan(ctx context.Context, err error) error {
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok || err == nil {
		return err
	}
	if _, ok := err.(*SpanError); ok {
		return err
	}
	return &SpanError{
		Span: span,
		Err:  err,
	}
}
