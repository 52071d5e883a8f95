package analytics

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

var (
	_ Recorder = Discard{}
	_ Recorder = (*FileRecorder)(nil)
)

func TestFileRecorderWritesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spool", "analytics.jsonl")
	rec, err := NewFileRecorder(path, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewFileRecorder: %v", err)
	}

	rec.Record(NewGameStarted(1))
	rec.Record(NewCharacterSwitched("Shoogie", "Sue"))
	rec.Record(NewLevelCompleted(1, 2500, 2500, 7))
	rec.Record(NewGameOver(3100, 2))
	rec.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read spool: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("spool has %d lines, want 4", len(lines))
	}

	wantNames := []string{"game_started", "character_switched", "level_completed", "game_over"}
	for i, line := range lines {
		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if obj["event"] != wantNames[i] {
			t.Errorf("line %d event = %v, want %s", i, obj["event"], wantNames[i])
		}
		if _, ok := obj["timestamp"]; !ok {
			t.Errorf("line %d missing timestamp", i)
		}
	}

	var started GameStarted
	if err := json.Unmarshal([]byte(lines[0]), &started); err != nil {
		t.Fatalf("unmarshal game_started: %v", err)
	}
	if started.StartingRound != 1 {
		t.Errorf("starting_round = %d, want 1", started.StartingRound)
	}

	var over GameOver
	if err := json.Unmarshal([]byte(lines[3]), &over); err != nil {
		t.Fatalf("unmarshal game_over: %v", err)
	}
	if over.FinalScore != 3100 || over.RoundReached != 2 {
		t.Errorf("game_over = %d/%d, want 3100/2", over.FinalScore, over.RoundReached)
	}
}

func TestRecordAfterCloseIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analytics.jsonl")
	rec, err := NewFileRecorder(path, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewFileRecorder: %v", err)
	}
	rec.Close()
	rec.Close()

	// Must return immediately instead of parking on a dead worker.
	rec.Record(NewGameStarted(1))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read spool: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("spool has %d bytes after close, want 0", len(data))
	}
}

func TestCloseDrainsQueuedEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analytics.jsonl")
	rec, err := NewFileRecorder(path, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewFileRecorder: %v", err)
	}
	for i := 0; i < 10; i++ {
		rec.Record(NewCharacterSwitched("Shoogie", "Florence"))
	}
	rec.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read spool: %v", err)
	}
	got := strings.Count(string(data), "\n")
	if got != 10 {
		t.Errorf("spool has %d events, want 10", got)
	}
}

func TestEventTimestampsAreRFC3339(t *testing.T) {
	ev := NewLevelCompleted(2, 1000, 4000, 3)
	if _, err := time.Parse(time.RFC3339, ev.Timestamp); err != nil {
		t.Fatalf("timestamp %q does not parse: %v", ev.Timestamp, err)
	}
}
