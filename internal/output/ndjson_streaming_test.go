package output

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"
)

func TestEmitSink_NDJSON_FlushesPerWrite(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	defer pw.Close()

	bw := bufio.NewWriterSize(pw, 64*1024)
	s, err := NewEmitSink(bw, "ndjson")
	if err != nil {
		t.Fatalf("NewEmitSink returned error: %v", err)
	}

	lineCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		r := bufio.NewReader(pr)
		line, err := r.ReadString('\n')
		if err != nil {
			errCh <- err
			return
		}
		lineCh <- line
	}()

	if err := s.Write(Event{Type: "run.started", Mode: "update"}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	select {
	case line := <-lineCh:
		if !strings.Contains(line, "\"type\":\"run.started\"") {
			t.Fatalf("expected run.started event, got %q", line)
		}
	case err := <-errCh:
		t.Fatalf("read error: %v", err)
	case <-time.After(250 * time.Millisecond):
		t.Fatalf("timed out waiting for ndjson line; writer likely not flushing")
	}
}

func TestConsoleSink_NDJSON_FlushesPerWrite(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	defer pw.Close()

	bw := bufio.NewWriterSize(pw, 64*1024)
	s := NewConsoleSink(bw, "ndjson", nil)

	lineCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		r := bufio.NewReader(pr)
		line, err := r.ReadString('\n')
		if err != nil {
			errCh <- err
			return
		}
		lineCh <- line
	}()

	if err := s.Write(Event{Type: "run.started", Mode: "check"}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	select {
	case line := <-lineCh:
		if !strings.Contains(line, "\"mode\":\"check\"") {
			t.Fatalf("expected run.started event with mode, got %q", line)
		}
	case err := <-errCh:
		t.Fatalf("read error: %v", err)
	case <-time.After(250 * time.Millisecond):
		t.Fatalf("timed out waiting for ndjson line; writer likely not flushing")
	}
}
