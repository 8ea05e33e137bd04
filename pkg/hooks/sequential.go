package hooks

import (
	"context"
	"fmt"
	"time"
)

// terminal is the innermost pass-through the chain bottoms out at.
func terminal(ctx context.Context, hc *Context) error { return nil }

// RunSequential builds an inside-out middleware chain from defs (already
// priority-ordered) and executes it as a sequential
// runner.
func RunSequential(ctx context.Context, hc *Context, defs []*Definition) {
	chain := terminal
	for i := len(defs) - 1; i >= 0; i-- {
		chain = wrap(defs[i], chain, hc)
	}
	_ = chain(ctx, hc)
}

func wrap(def *Definition, downstream CallNext, hc *Context) CallNext {
	return func(ctx context.Context, hc2 *Context) error {
		if hc2.Abort {
			return nil
		}

		start := time.Now()
		done := make(chan error, 1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					done <- fmt.Errorf("hook panicked: %v", r)
				}
			}()
			done <- def.Handler(ctx, hc2, downstream)
		}()

		var err error
		select {
		case err = <-done:
		case <-time.After(def.timeout()):
			err = fmt.Errorf("hook %q timed out after %s", def.ID, def.timeout())
		}
		elapsed := time.Since(start)

		if err == nil {
			hc2.Results = append(hc2.Results, HookResult{
				HookName: def.ID, Success: true, DurationMS: elapsed.Milliseconds(),
			})
			return nil
		}

		hc2.Results = append(hc2.Results, HookResult{
			HookName: def.ID, Success: false, Error: err.Error(), DurationMS: elapsed.Milliseconds(),
		})

		if def.FailMode == FailClosed {
			hc2.Abort = true
			hc2.AbortReason = fmt.Sprintf("hook %q failed: %v", def.ID, err)
			return nil
		}

		// Fail-open: skip this hook, proceed with downstream directly.
		return downstream(ctx, hc2)
	}
}
