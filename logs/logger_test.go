package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("operation", "op", "add", "expr", "3 + 5")
	})
	if !strings.Contains(buf.String(), "op=add") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %s", got)
	}
	if got := toJournalKey("head-position2"); got != "HEAD_POSITION2" {
		t.Fatalf("got %s", got)
	}
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("bad program")
	if err := WrapSpan(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "bad program (span: abc)" {
		t.Fatalf("got %v", err)
	}
	var spanErr *SpanError
	if !errors.As(err, &spanErr) || spanErr.Span != "abc" {
		t.Fatalf("got %v", err)
	}
	// wrapped once
	if again := WrapSpan(ctx, err); again != err {
		t.Fatalf("got %v", again)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}
