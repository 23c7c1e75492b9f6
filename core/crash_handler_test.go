package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// captureCrash swaps the exit and output hooks for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, <-chan int) {
	t.Helper()
	var (
		mu  sync.Mutex
		buf bytes.Buffer
	)
	codes := make(chan int, 1)

	prevOut, prevExit := crashOut, crashExit
	crashOut = writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return buf.Write(p)
	})
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		SetCrashRestore(nil)
	})
	return &buf, codes
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func TestHandleCrashNil(t *testing.T) {
	buf, codes := captureCrash(t)

	HandleCrash(nil)

	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
	select {
	case code := <-codes:
		t.Errorf("Unexpected exit(%d)", code)
	default:
	}
}

func TestHandleCrashRestoresOnce(t *testing.T) {
	buf, codes := captureCrash(t)
	restored := 0
	SetCrashRestore(func() { restored++ })

	HandleCrash("boom")

	if restored != 1 {
		t.Errorf("Expected restore to run once, ran %d times", restored)
	}
	if code := <-codes; code != 1 {
		t.Errorf("Expected exit(1), got exit(%d)", code)
	}
	out := buf.String()
	if !strings.Contains(out, "CRASH DETECTED: boom") {
		t.Errorf("Missing crash banner: %q", out)
	}
	if !strings.Contains(out, "Stack Trace:") {
		t.Errorf("Missing stack trace: %q", out)
	}

	// Restore is consumed by the first crash
	HandleCrash("again")
	<-codes
	if restored != 1 {
		t.Errorf("Expected restore to be cleared after use, ran %d times", restored)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	_, codes := captureCrash(t)

	Go(func() { panic("poller died") })

	select {
	case code := <-codes:
		if code != 1 {
			t.Errorf("Expected exit(1), got exit(%d)", code)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Panic in Go was not handled")
	}
}
