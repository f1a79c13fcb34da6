// Package logger writes the checkpoint log: one timestamped,
// append-mode, line-buffered file per optimization run, with one block
// per checkpoint boundary.
//
// Unlike a high-frequency telemetry logger, every checkpoint here is a
// permanent record of optimizer progress and must never be dropped, so
// writes are synchronous under a mutex rather than funneled through a
// best-effort channel.
package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"spsatune/internal/model"
)

// Logger appends checkpoint blocks to a single log file for the
// lifetime of one optimization run.
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	writer *bufio.Writer
	path   string
}

// New creates dir if needed and opens a new log file named
// YYYYMMDD_HHMMSS.log inside it, in append mode with line buffering.
func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("logger: creating %s: %w", dir, err)
	}

	name := time.Now().Format("20060102_150405") + ".log"
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("logger: opening %s: %w", path, err)
	}

	return &Logger{
		file:   f,
		writer: bufio.NewWriter(f),
		path:   path,
	}, nil
}

// Path returns the log file's path.
func (l *Logger) Path() string { return l.path }

// Log appends one checkpoint block:
//
//	Iteration <i>: Elo=<x.xx> ±<y.yy>
//	Parameters:
//	  <name>: <value3dp>
func (l *Logger) Log(e model.CheckpointEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.writer, "Iteration %d: Elo=%.2f ±%.2f\n", e.Iteration, e.Elo, e.Elo2Sigma)
	fmt.Fprintln(l.writer, "Parameters:")
	for _, name := range e.SortedNames() {
		fmt.Fprintf(l.writer, "  %s: %.3f\n", name, e.Params[name])
	}

	return l.writer.Flush()
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.writer.Flush(); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}
