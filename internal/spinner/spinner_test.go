package spinner

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(&buf, "Counting...")

	if spinner.message != "Counting..." {
		t.Errorf("Expected message %q, got %q", "Counting...", spinner.message)
	}
	// a buffer is not a terminal, so only a carriage return clears the line
	if spinner.erase != "\r" {
		t.Errorf("Expected erase sequence %q, got %q", "\r", spinner.erase)
	}
	if spinner.IsActive() {
		t.Error("Spinner should not be active before Start()")
	}
}

func TestSpinnerStartStop(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(&buf, "Counting...")

	spinner.Start(context.Background())
	if !spinner.IsActive() {
		t.Error("Spinner should be active after Start()")
	}

	// allow a few frames to render
	time.Sleep(250 * time.Millisecond)
	spinner.Stop()

	if spinner.IsActive() {
		t.Error("Spinner should not be active after Stop()")
	}

	output := buf.String()
	if !strings.Contains(output, "Counting...") {
		t.Error("Expected message to appear in output")
	}

	hasFrame := false
	for _, frame := range frames {
		if strings.Contains(output, frame) {
			hasFrame = true
			break
		}
	}
	if !hasFrame {
		t.Error("Expected spinner frames in output")
	}
	if !strings.HasSuffix(output, "\r") {
		t.Error("Expected output to end with carriage return")
	}
}

func TestSpinnerUpdateMessage(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(&buf, "Reading...")

	spinner.Start(context.Background())
	spinner.UpdateMessage("Counting...")
	time.Sleep(250 * time.Millisecond)
	spinner.Stop()

	if !strings.Contains(buf.String(), "Counting...") {
		t.Error("Expected updated message in output")
	}
}

func TestSpinnerDoubleStartStop(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(&buf, "Testing...")

	spinner.Start(context.Background())
	spinner.Start(context.Background()) // no second goroutine
	if !spinner.IsActive() {
		t.Error("Spinner should still be active after second Start()")
	}

	spinner.Stop()
	spinner.Stop()
	if spinner.IsActive() {
		t.Error("Spinner should not be active after Stop()")
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(&buf, "Testing...")

	spinner.Stop()

	if buf.Len() != 0 {
		t.Errorf("Stop() without Start() wrote %q", buf.String())
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	var buf bytes.Buffer
	spinner := New(&buf, "Testing...")

	ctx, cancel := context.WithCancel(context.Background())
	spinner.Start(ctx)
	cancel()

	// Stop still returns once the goroutine has exited on its own
	done := make(chan struct{})
	go func() {
		spinner.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() did not return after context cancellation")
	}
}
