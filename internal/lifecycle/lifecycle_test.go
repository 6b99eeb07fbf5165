package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"albumvault/internal/lifecycle"
)

func TestContext_CancelledOnShutdown(t *testing.T) {
	lc := lifecycle.New()

	select {
	case <-lc.Context().Done():
		t.Fatal("context cancelled before Shutdown")
	default:
	}

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context not cancelled after Shutdown")
	}
}

func TestWaitForStartup_RunsHooksInOrder(t *testing.T) {
	lc := lifecycle.New()

	var order []int
	lc.OnStartup(func() { order = append(order, 1) })
	lc.OnStartup(func() { order = append(order, 2) })
	lc.OnStartup(func() { order = append(order, 3) })

	lc.WaitForStartup()

	if len(order) != 3 {
		t.Fatalf("ran %d hooks, want 3", len(order))
	}
	for i, got := range order {
		if got != i+1 {
			t.Errorf("hook order[%d] = %d, want %d", i, got, i+1)
		}
	}
}

func TestReady(t *testing.T) {
	lc := lifecycle.New()

	if lc.Ready() {
		t.Error("Ready() = true before startup")
	}

	lc.WaitForStartup()

	if !lc.Ready() {
		t.Error("Ready() = false after startup")
	}
}

func TestShutdown_WaitsForHooks(t *testing.T) {
	lc := lifecycle.New()

	var cleaned atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(10 * time.Millisecond)
		cleaned.Store(true)
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if !cleaned.Load() {
		t.Error("Shutdown() returned before hook finished")
	}
}

func TestShutdown_Timeout(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	lc.OnShutdown(func() {
		<-release
	})
	defer close(release)

	if err := lc.Shutdown(20 * time.Millisecond); err == nil {
		t.Error("Shutdown() should time out with a blocked hook")
	}
}
