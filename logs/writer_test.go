package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestCloseWithoutLogFile(t *testing.T) {
	if logFileOpened.Load() {
		t.Skip("log file already opened")
	}
	if err := Close(); err != nil {
		t.Fatal(err)
	}
}

func TestLogFileOpenedOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tapecalc.log")
	*logFile = path
	defer func() {
		*logFile = ""
	}()

	first := Module{}.Writer()
	second := Module{}.Writer()
	if first != second {
		t.Fatal("should reuse the opened file")
	}
	if first == Writer(os.Stderr) {
		t.Fatal("should not fall back to stderr")
	}

	for range 2 {
		dscope.New(new(Module)).Call(func(
			logger Logger,
		) {
			logger.Info("operation", "op", "add")
		})
	}

	if err := Close(); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(content), "op=add"); n != 2 {
		t.Fatalf("got %d in %s", n, content)
	}
}
