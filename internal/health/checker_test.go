package health

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type stubChecker struct {
	result CheckResult
	delay  time.Duration
	calls  *atomic.Int32
}

func (s stubChecker) Check(ctx context.Context) CheckResult {
	if s.calls != nil {
		s.calls.Add(1)
	}
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return CheckResult{Name: s.result.Name, Healthy: false, Error: ctx.Err().Error()}
		}
	}
	return s.result
}

func TestProbeRunnerReady(t *testing.T) {
	runner := NewProbeRunner(200*time.Millisecond, 0,
		stubChecker{result: CheckResult{Name: "db", Healthy: true}},
		stubChecker{result: CheckResult{Name: "redis", Healthy: true}},
	)
	ready, results := runner.Ready(context.Background())
	if !ready {
		t.Fatal("expected ready")
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestProbeRunnerUnreadyWhenAnyCheckFails(t *testing.T) {
	runner := NewProbeRunner(200*time.Millisecond, 0,
		stubChecker{result: CheckResult{Name: "db", Healthy: true}},
		stubChecker{result: CheckResult{Name: "redis", Healthy: false, Error: "down"}},
	)
	ready, results := runner.Ready(context.Background())
	if ready {
		t.Fatal("expected unready")
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestProbeRunnerStartupGrace(t *testing.T) {
	runner := NewProbeRunner(200*time.Millisecond, 2*time.Second,
		stubChecker{result: CheckResult{Name: "db", Healthy: true}},
	)
	ready, results := runner.Ready(context.Background())
	if ready {
		t.Fatal("expected unready during grace period")
	}
	if len(results) != 1 || results[0].Name != "startup_grace" {
		t.Fatalf("unexpected grace results: %+v", results)
	}
}

func TestProbeRunnerRunsChecksInParallel(t *testing.T) {
	var calls atomic.Int32
	runner := NewProbeRunner(time.Second, 0,
		stubChecker{result: CheckResult{Name: "db", Healthy: true}, delay: 100 * time.Millisecond, calls: &calls},
		stubChecker{result: CheckResult{Name: "redis", Healthy: true}, delay: 100 * time.Millisecond, calls: &calls},
		stubChecker{result: CheckResult{Name: "storage", Healthy: true}, delay: 100 * time.Millisecond, calls: &calls},
	)

	start := time.Now()
	ready, _ := runner.Ready(context.Background())
	elapsed := time.Since(start)

	if !ready {
		t.Fatal("expected ready")
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 checks, got %d", calls.Load())
	}
	if elapsed > 250*time.Millisecond {
		t.Fatalf("checks appear sequential: took %v", elapsed)
	}
}

func TestProbeRunnerDropsNilCheckers(t *testing.T) {
	runner := NewProbeRunner(time.Second, 0,
		nil,
		stubChecker{result: CheckResult{Name: "db", Healthy: true}},
	)
	ready, results := runner.Ready(context.Background())
	if !ready || len(results) != 1 {
		t.Fatalf("expected 1 result and ready, got ready=%v results=%d", ready, len(results))
	}
}
