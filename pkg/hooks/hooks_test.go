package hooks

import (
	"context"
	"testing"
	"time"
)

func passThrough(ctx context.Context, hc *Context, next CallNext) error {
	return next(ctx, hc)
}

func TestRegistryCapEnforced(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < maxHooksPerEvent; i++ {
		id := string(rune('a' + i))
		if err := r.Register(&Definition{ID: id, Event: EventRequestPre, Handler: passThrough, Enabled: true}); err != nil {
			t.Fatalf("hook %d should register, got %v", i, err)
		}
	}
	err := r.Register(&Definition{ID: "overflow", Event: EventRequestPre, Handler: passThrough, Enabled: true})
	if err != ErrTooManyHooks {
		t.Fatalf("expected ErrTooManyHooks, got %v", err)
	}
}

func TestGetHooksTenantFilter(t *testing.T) {
	r := NewRegistry()
	r.Register(&Definition{ID: "system", Event: EventRequestPre, Priority: 10, Handler: passThrough, Enabled: true})
	r.Register(&Definition{ID: "tenant-a", Event: EventRequestPre, Priority: 5, TenantID: "a", Handler: passThrough, Enabled: true})
	r.Register(&Definition{ID: "tenant-b", Event: EventRequestPre, Priority: 1, TenantID: "b", Handler: passThrough, Enabled: true})

	got := r.GetHooks(EventRequestPre, "a")
	if len(got) != 2 {
		t.Fatalf("expected 2 hooks for tenant a, got %d", len(got))
	}
	if got[0].ID != "tenant-a" || got[1].ID != "system" {
		t.Fatalf("expected priority order tenant-a, system; got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestSequentialAbortShortCircuits(t *testing.T) {
	var ranSecond bool
	abortHook := &Definition{
		ID: "gate", Event: EventRequestPre, Priority: 1, Enabled: true, FailMode: FailOpen,
		Handler: func(ctx context.Context, hc *Context, next CallNext) error {
			hc.Abort = true
			hc.AbortReason = "blocked_by_test"
			return nil
		},
	}
	second := &Definition{
		ID: "second", Event: EventRequestPre, Priority: 2, Enabled: true, FailMode: FailOpen,
		Handler: func(ctx context.Context, hc *Context, next CallNext) error {
			ranSecond = true
			return next(ctx, hc)
		},
	}

	hc := NewContext(EventRequestPre, "")
	RunSequential(context.Background(), hc, []*Definition{abortHook, second})

	if !hc.Abort || hc.AbortReason != "blocked_by_test" {
		t.Fatalf("expected abort with reason blocked_by_test, got abort=%v reason=%q", hc.Abort, hc.AbortReason)
	}
	if ranSecond {
		t.Fatalf("downstream hook should not run after abort")
	}
}

func TestSequentialFailOpenSkipsTimedOutHook(t *testing.T) {
	slow := &Definition{
		ID: "slow", Event: EventRequestPre, Priority: 1, Enabled: true, FailMode: FailOpen, TimeoutMS: 10,
		Handler: func(ctx context.Context, hc *Context, next CallNext) error {
			time.Sleep(50 * time.Millisecond)
			return next(ctx, hc)
		},
	}
	var ranDownstream bool
	downstream := &Definition{
		ID: "downstream", Event: EventRequestPre, Priority: 2, Enabled: true, FailMode: FailOpen,
		Handler: func(ctx context.Context, hc *Context, next CallNext) error {
			ranDownstream = true
			return next(ctx, hc)
		},
	}

	hc := NewContext(EventRequestPre, "")
	RunSequential(context.Background(), hc, []*Definition{slow, downstream})

	if hc.Abort {
		t.Fatalf("fail-open timeout must not abort")
	}
	if !ranDownstream {
		t.Fatalf("fail-open must continue to downstream hook after timeout")
	}
	if len(hc.Results) != 2 || hc.Results[0].Success {
		t.Fatalf("expected first result to record failure, got %+v", hc.Results)
	}
}

func TestSequentialFailClosedAborts(t *testing.T) {
	failing := &Definition{
		ID: "strict", Event: EventRequestPre, Priority: 1, Enabled: true, FailMode: FailClosed, TimeoutMS: 10,
		Handler: func(ctx context.Context, hc *Context, next CallNext) error {
			time.Sleep(50 * time.Millisecond)
			return next(ctx, hc)
		},
	}
	hc := NewContext(EventRequestPre, "")
	RunSequential(context.Background(), hc, []*Definition{failing})

	if !hc.Abort {
		t.Fatalf("fail-closed timeout must abort")
	}
}

func TestConcurrentRunnerNeverAborts(t *testing.T) {
	a := &Definition{ID: "a", Event: EventAgentInvokePost, Enabled: true, FailMode: FailClosed, TimeoutMS: 10,
		Handler: func(ctx context.Context, hc *Context, next CallNext) error {
			time.Sleep(30 * time.Millisecond)
			return nil
		}}
	b := &Definition{ID: "b", Event: EventAgentInvokePost, Enabled: true, FailMode: FailOpen,
		Handler: passThrough}

	hc := NewContext(EventAgentInvokePost, "")
	RunConcurrent(context.Background(), hc, []*Definition{a, b})

	if hc.Abort {
		t.Fatalf("concurrent runner must never abort")
	}
	if len(hc.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(hc.Results))
	}
}

func TestMetricsCollectorAccumulates(t *testing.T) {
	mc := NewMetricsCollector()
	hc := NewContext(EventToolExecutePre, "")
	RunSequential(context.Background(), hc, []*Definition{
		{ID: "metrics", Event: EventToolExecutePre, Enabled: true, FailMode: FailOpen, Handler: mc.Handler},
	})
	RunSequential(context.Background(), hc, []*Definition{
		{ID: "metrics", Event: EventToolExecutePre, Enabled: true, FailMode: FailOpen, Handler: mc.Handler},
	})

	snap := mc.Snapshot(EventToolExecutePre)
	if snap.Calls != 2 {
		t.Fatalf("expected 2 accumulated calls, got %d", snap.Calls)
	}
}
