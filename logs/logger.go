package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/reusee/tapecalc/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Logger = *slog.Logger

var level = new(slog.LevelVar)

func init() {
	for name, l := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cmds.Define("-log-"+name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+name))
	}
}

// Logger writes text to Writer, and to the systemd journal when one is reachable.
// Under a systemd service only the journal is used.
func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	var text slog.Handler
	if !underSystemdService() {
		text = slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		})
		handlers = append(handlers, text)
	}

	journal, err := newJournalHandler()
	switch {
	case err == nil:
		handlers = append(handlers, journal)
	case text != nil:
		record := slog.NewRecord(time.Now(), slog.LevelDebug, "no systemd journal", 0)
		record.AddAttrs(slog.Any("error", err))
		if text.Enabled(context.Background(), record.Level) {
			_ = text.Handle(context.Background(), record)
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func newJournalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

// journal field names are upper case letters, digits and underscores
func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, str)
}

var underSystemdService = sync.OnceValue(func() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	// "0::/system.slice/foo.service/..."
	parts := strings.SplitN(strings.TrimSpace(string(content)), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
})
