package hooks

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// noopNext is passed to every hook run by the concurrent runner; hooks
// have nothing downstream to delegate to.
func noopNext(ctx context.Context, hc *Context) error { return nil }

// RunConcurrent spawns all enabled hooks in parallel with identical
// timeout semantics. It never aborts and each hook gets an isolated
// Context copy so results don't race; the per-hook results are merged
// back onto hc in completion order under a mutex.
func RunConcurrent(ctx context.Context, hc *Context, defs []*Definition) {
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, def := range defs {
		wg.Add(1)
		go func(def *Definition) {
			defer wg.Done()

			start := time.Now()
			done := make(chan error, 1)
			go func() {
				defer func() {
					if r := recover(); r != nil {
						done <- fmt.Errorf("hook panicked: %v", r)
					}
				}()
				done <- def.Handler(ctx, hc, noopNext)
			}()

			var err error
			select {
			case err = <-done:
			case <-time.After(def.timeout()):
				err = fmt.Errorf("hook %q timed out after %s", def.ID, def.timeout())
			}
			elapsed := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				hc.Results = append(hc.Results, HookResult{
					HookName: def.ID, Success: true, DurationMS: elapsed.Milliseconds(),
				})
				return
			}
			hc.Results = append(hc.Results, HookResult{
				HookName: def.ID, Success: false, Error: err.Error(), DurationMS: elapsed.Milliseconds(),
			})
			// fail-open or fail-closed: concurrent runner never aborts
		}(def)
	}

	wg.Wait()
}
