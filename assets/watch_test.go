package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(dir, name string) {
	_ = os.WriteFile(filepath.Join(dir, name), []byte("animations: {}\n"), 0o644)
}

func TestWatcherReportsManifestWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeYAML(dir, "fighter.yaml")

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "fighter.yaml" {
			t.Fatalf("got event for %q, want fighter.yaml", got)
		}
	case err := <-w.Errors:
		t.Fatal(err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event before timeout")
	}
}

func TestWatcherCloseDuringBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}

	// Write more files than the Events buffer holds while nothing drains,
	// then close mid-stream. The close must not panic the run goroutine and
	// must not deadlock on the full buffer.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			writeYAML(dir, fmt.Sprintf("m%03d.yaml", i))
		}
	}()

	time.Sleep(10 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	<-done

	// Events stays open after Close; draining leftovers must not panic.
	for {
		select {
		case <-w.Events:
		default:
			return
		}
	}
}

func TestIsManifestFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"assets/fighter.yaml", true},
		{"assets/fighter.yml", true},
		{"assets/FIGHTER.YAML", true},
		{"assets/fighter.yaml~", false},
		{"assets/fighter.json", false},
		{"assets/fighter", false},
	}
	for _, tt := range tests {
		if got := isManifestFile(tt.path); got != tt.want {
			t.Errorf("isManifestFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
