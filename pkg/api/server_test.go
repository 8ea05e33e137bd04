package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarsy-labs/agentcore/pkg/hooks"
)

// newHookOnlyServer builds a Server with just enough wiring to exercise
// routing and the request hook middleware.
func newHookOnlyServer(t *testing.T, reg *hooks.Registry) *Server {
	t.Helper()
	s := &Server{hookReg: reg}
	return s
}

func TestRequestPreHookAbortShortCircuits(t *testing.T) {
	reg := hooks.NewRegistry()
	require.NoError(t, reg.Register(&hooks.Definition{
		ID:       "blocker",
		Event:    hooks.EventRequestPre,
		Priority: 10,
		Enabled:  true,
		FailMode: hooks.FailClosed,
		Handler: func(ctx context.Context, hc *hooks.Context, next hooks.CallNext) error {
			hc.Abort = true
			hc.AbortReason = "blocked_by_test"
			return nil
		},
	}))

	var postRan bool
	require.NoError(t, reg.Register(&hooks.Definition{
		ID:       "post-observer",
		Event:    hooks.EventRequestPost,
		Priority: 10,
		Enabled:  true,
		Handler: func(ctx context.Context, hc *hooks.Context, next hooks.CallNext) error {
			postRan = true
			return next(ctx, hc)
		},
	}))

	s := newHookOnlyServer(t, reg)
	engineSetupForTest(s)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	s.engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "blocked_by_test")
	assert.False(t, postRan, "post hooks must not run after an abort")
}

func TestRequestHooksPassThrough(t *testing.T) {
	reg := hooks.NewRegistry()
	var sawStatus any
	require.NoError(t, reg.Register(&hooks.Definition{
		ID:       "post-observer",
		Event:    hooks.EventRequestPost,
		Priority: 10,
		Enabled:  true,
		Handler: func(ctx context.Context, hc *hooks.Context, next hooks.CallNext) error {
			sawStatus = hc.Data["status_code"]
			return next(ctx, hc)
		},
	}))

	s := newHookOnlyServer(t, reg)
	engineSetupForTest(s)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	s.engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusOK, sawStatus)
}

func TestSecurityHeaders(t *testing.T) {
	s := newHookOnlyServer(t, hooks.NewRegistry())
	engineSetupForTest(s)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	s.engine.ServeHTTP(rec, req)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestTenantFromRequest(t *testing.T) {
	s := newHookOnlyServer(t, hooks.NewRegistry())
	engineSetupForTest(s)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tenant", nil)
	req.Header.Set("X-Tenant-ID", "acme")
	s.engine.ServeHTTP(rec, req)
	assert.Equal(t, "acme", rec.Body.String())

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/tenant", nil)
	s.engine.ServeHTTP(rec, req)
	assert.Equal(t, "default", rec.Body.String())
}
