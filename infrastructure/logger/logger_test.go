package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type bufferWriteCloser struct {
	sync.Mutex
	bytes.Buffer
	closed bool
}

func (b *bufferWriteCloser) Write(p []byte) (int, error) {
	b.Lock()
	defer b.Unlock()
	return b.Buffer.Write(p)
}

func (b *bufferWriteCloser) Close() error {
	b.Lock()
	defer b.Unlock()
	b.closed = true
	return nil
}

func TestBackendFiltersByWriterLevel(t *testing.T) {
	backend := NewBackendWithFlags(0)
	all := &bufferWriteCloser{}
	errorsOnly := &bufferWriteCloser{}
	if err := backend.AddLogWriter(all, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %+v", err)
	}
	if err := backend.AddLogWriter(errorsOnly, LevelError); err != nil {
		t.Fatalf("AddLogWriter: %+v", err)
	}
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %+v", err)
	}
	if err := backend.AddLogWriter(&bufferWriteCloser{}, LevelTrace); err == nil {
		t.Fatalf("AddLogWriter: expected an error on a running backend")
	}

	log := backend.Logger("TEST")
	log.SetLevel(LevelDebug)
	log.Tracef("filtered %d", 1)
	log.Debugf("debug %d", 2)
	log.Errorf("error %d", 3)
	backend.Close()

	allOutput := all.String()
	if strings.Contains(allOutput, "filtered") {
		t.Errorf("trace message should have been filtered by the logger level:\n%s", allOutput)
	}
	if !strings.Contains(allOutput, "[DBG] TEST: debug 2") {
		t.Errorf("missing debug message:\n%s", allOutput)
	}
	if !strings.Contains(allOutput, "[ERR] TEST: error 3") {
		t.Errorf("missing error message:\n%s", allOutput)
	}

	errorsOutput := errorsOnly.String()
	if strings.Contains(errorsOutput, "debug 2") {
		t.Errorf("debug message should have been filtered by the writer level:\n%s", errorsOutput)
	}
	if !strings.Contains(errorsOutput, "error 3") {
		t.Errorf("missing error message:\n%s", errorsOutput)
	}
	if !all.closed || !errorsOnly.closed {
		t.Errorf("Close should close every writer")
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
		ok       bool
	}{
		{"trace", LevelTrace, true},
		{"DBG", LevelDebug, true},
		{"Info", LevelInfo, true},
		{"wrn", LevelWarn, true},
		{"error", LevelError, true},
		{"critical", LevelCritical, true},
		{"off", LevelOff, true},
		{"verbose", LevelInfo, false},
	}
	for _, test := range tests {
		level, ok := LevelFromString(test.in)
		if level != test.expected || ok != test.ok {
			t.Errorf("LevelFromString(%q): got (%s, %t), want (%s, %t)",
				test.in, level, ok, test.expected, test.ok)
		}
	}
	for _, name := range SupportedLevels {
		if _, ok := LevelFromString(name); !ok {
			t.Errorf("supported level %q is not parsed", name)
		}
	}
}

func TestParseAndSetLogLevels(t *testing.T) {
	first := RegisterSubSystem("TST1")
	second := RegisterSubSystem("TST2")
	if RegisterSubSystem("TST1") != first {
		t.Fatalf("RegisterSubSystem should return the existing logger")
	}

	if err := ParseAndSetLogLevels("debug"); err != nil {
		t.Fatalf("ParseAndSetLogLevels: %+v", err)
	}
	if first.Level() != LevelDebug || second.Level() != LevelDebug {
		t.Fatalf("expected every subsystem at debug, got %s and %s", first.Level(), second.Level())
	}

	if err := ParseAndSetLogLevels("TST1=trace,TST2=warn"); err != nil {
		t.Fatalf("ParseAndSetLogLevels: %+v", err)
	}
	if first.Level() != LevelTrace || second.Level() != LevelWarn {
		t.Fatalf("unexpected levels %s and %s", first.Level(), second.Level())
	}

	invalid := []string{"loud", "TST1", "NOPE=info,TST1=debug", "TST1=loud,TST2=info"}
	for _, debugLevel := range invalid {
		if err := ParseAndSetLogLevels(debugLevel); err == nil {
			t.Errorf("ParseAndSetLogLevels(%q): expected an error", debugLevel)
		}
	}
}
