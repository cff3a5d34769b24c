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

func resetLogging(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
}

func TestTraceWritesJSONLinesWhenEnabled(t *testing.T) {
	resetLogging(t)
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	SetTraceEnabled(true)

	Trace("store.reduce", map[string]interface{}{"counter": 10})
	Trace("loop.transition", map[string]interface{}{"to": "off"})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected trace file: %v", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			Event   string                 `json:"event"`
			Payload map[string]interface{} `json:"payload"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid trace line %q: %v", scanner.Text(), err)
		}
		names = append(names, entry.Event)
	}
	if got := strings.Join(names, ","); got != "store.reduce,loop.transition" {
		t.Fatalf("unexpected trace events %q", got)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	resetLogging(t)
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	SetTraceEnabled(false)

	Trace("store.reduce", nil)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace file, stat err = %v", err)
	}
}

func TestEmptyPathDisablesFileOutput(t *testing.T) {
	resetLogging(t)
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	Configure("")
	SetTraceEnabled(true)
	Error(errors.New("boom"))
	Trace("app.start", nil)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files to be created, found %d", len(entries))
	}
	if TraceEnabled() {
		t.Fatalf("expected tracing to report disabled without a log file")
	}
}

func TestErrorAppendsToLogFile(t *testing.T) {
	resetLogging(t)
	path := filepath.Join(t.TempDir(), "errors.log")
	Configure(path)

	Error(errors.New("first failure"))
	Error(nil)
	Error(errors.New("second failure"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "first failure") || !strings.Contains(text, "second failure") {
		t.Fatalf("expected both errors in log, got:\n%s", text)
	}
	if n := strings.Count(text, "\n"); n != 2 {
		t.Fatalf("expected 2 log lines, got %d", n)
	}
}
