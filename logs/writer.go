package logs

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/reusee/tapecalc/cmds"
)

type Writer io.Writer

var logFile = cmds.Var[string]("-log-file", "append logs to a file instead of stderr")

var (
	logFileOpened atomic.Bool
	openLogFile   = sync.OnceValues(func() (*os.File, error) {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		logFileOpened.Store(true)
		return f, nil
	})
)

// Writer is shared by every scope of the process; the log file is opened on first use.
func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	f, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		return os.Stderr
	}
	return f
}

// Close closes the log file if one was opened.
func Close() error {
	if !logFileOpened.Load() {
		return nil
	}
	f, _ := openLogFile()
	return f.Close()
}
