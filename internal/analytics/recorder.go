package analytics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// Recorder accepts gameplay events. Record must never block the caller.
type Recorder interface {
	Record(Event)
}

// Discard drops every event. It backs --no-analytics and tests.
type Discard struct{}

// Record implements Recorder.
func (Discard) Record(Event) {}

const recorderBuffer = 64

// FileRecorder appends events as JSON lines to a spool file from a
// worker goroutine, mirroring each event name to the logger at debug
// level.
type FileRecorder struct {
	logger  *log.Logger
	file    *os.File
	events  chan Event
	closing chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewFileRecorder opens the spool at path, creating parent directories
// as needed, and starts the writer goroutine.
func NewFileRecorder(path string, logger *log.Logger) (*FileRecorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("analytics: cannot create spool directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("analytics: cannot open spool: %w", err)
	}
	r := &FileRecorder{
		logger:  logger,
		file:    f,
		events:  make(chan Event, recorderBuffer),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go r.run()
	return r, nil
}

// Record queues the event for the writer. A full buffer drops the event
// rather than stalling the game loop.
func (r *FileRecorder) Record(ev Event) {
	select {
	case <-r.closing:
		return
	default:
	}
	select {
	case r.events <- ev:
	default:
	}
}

// Close drains queued events, flushes the spool and stops the writer.
// Safe to call more than once.
func (r *FileRecorder) Close() {
	r.once.Do(func() {
		close(r.closing)
		<-r.done
	})
}

func (r *FileRecorder) run() {
	defer close(r.done)
	defer r.file.Close()

	warned := false
	write := func(ev Event) {
		line, err := json.Marshal(ev)
		if err != nil {
			return
		}
		line = append(line, '\n')
		if _, err := r.file.Write(line); err != nil {
			// One warning per recorder, not one per event.
			if !warned {
				r.logger.Warn("cannot write analytics spool", "error", err)
				warned = true
			}
			return
		}
		r.logger.Debug("recorded analytics event", "event", ev.EventName())
	}

	for {
		select {
		case ev := <-r.events:
			write(ev)
		case <-r.closing:
			for {
				select {
				case ev := <-r.events:
					write(ev)
				default:
					return
				}
			}
		}
	}
}
