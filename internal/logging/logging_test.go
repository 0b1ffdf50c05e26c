package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONLines(t *testing.T) {
	path := useTempLog(t)
	SetSession("test-session")
	SetTraceEnabled(true)

	Trace("console.dispatch", map[string]interface{}{"command": "hello"})
	Trace("timer.start", map[string]interface{}{"task": "rainbow"})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	defer f.Close()

	var events []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			Session string                 `json:"session"`
			Event   string                 `json:"event"`
			Payload map[string]interface{} `json:"payload"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid json line %q: %v", scanner.Text(), err)
		}
		if entry.Session != "test-session" {
			t.Fatalf("expected session test-session, got %q", entry.Session)
		}
		events = append(events, entry.Event)
	}
	if strings.Join(events, ",") != "console.dispatch,timer.start" {
		t.Fatalf("unexpected events %v", events)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, stat err = %v", err)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := useTempLog(t)
	Error(errors.New("boom"))
	Error(nil)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected error in log, got %q", string(data))
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Fatalf("expected a single line, got %q", string(data))
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	Configure("")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}

func TestSetSessionIgnoresBlank(t *testing.T) {
	SetSession("abc")
	SetSession("  ")
	if Session() != "abc" {
		t.Fatalf("expected session abc, got %q", Session())
	}
}
