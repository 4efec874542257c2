package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		log   func(*Logger)
		want  string
	}{
		{"error", false, func(l *Logger) { l.Errorf("disk %s", "full") }, "ERROR: disk full\n"},
		{"warning", false, func(l *Logger) { l.Warningf("slow") }, "WARNING: slow\n"},
		{"info", false, func(l *Logger) { l.Infof("opened %d", 3) }, "INFO: opened 3\n"},
		{"debug off", false, func(l *Logger) { l.Debugf("hidden") }, ""},
		{"debug on", true, func(l *Logger) { l.Debugf("E2 -> %s", "E4") }, "DEBUG: E2 -> E4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(New(&buf, tt.debug))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogger_SetDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Debugf("one")
	l.SetDebug(true)
	l.Debugf("two")
	l.SetDebug(false)
	l.Debugf("three")

	if got := buf.String(); got != "DEBUG: two\n" {
		t.Errorf("output = %q, want only the second message", got)
	}
}

func TestNew_NilWriter(t *testing.T) {
	l := New(nil, true)
	// Must not panic.
	l.Errorf("nowhere")
	l.Debugf("nowhere")
	Discard().Infof("nowhere")
}

func TestQuiet(t *testing.T) {
	var buf bytes.Buffer
	q := Quiet(New(&buf, true))

	q.Infof("badger started")
	q.Debugf("compaction")
	q.Warningf("value log %s", "replayed")
	q.Errorf("failed")

	got := buf.String()
	if strings.Contains(got, "INFO") || strings.Contains(got, "DEBUG") {
		t.Errorf("output = %q, want only warnings and errors", got)
	}
	if !strings.Contains(got, "WARNING: value log replayed") || !strings.Contains(got, "ERROR: failed") {
		t.Errorf("output = %q, missing warning or error", got)
	}
}
