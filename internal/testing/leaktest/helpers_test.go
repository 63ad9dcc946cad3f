package leaktest

import (
	"sync"
	"testing"
)

func TestCheckNoGoroutineLeak_JoinedGoroutines(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
			}()
		}
		wg.Wait()
	})
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)

	probe := &recordingTB{}
	checker := NewGoroutineChecker(probe)
	go func() { <-stop }()
	checker.Check(0)

	if !probe.failed {
		t.Error("expected the blocked goroutine to be reported")
	}
}

// recordingTB captures failures without failing the real test
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(string, ...any) { r.failed = true }
