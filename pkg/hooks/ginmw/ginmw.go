// Package ginmw adapts the hook pipeline onto gin-gonic/gin, issuing
// request.pre before the route handler and request.post after it.
package ginmw

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-labs/agentcore/pkg/hooks"
)

// TenantFunc extracts a tenant id from the incoming request; callers
// without multi-tenant routing can pass a func returning "".
type TenantFunc func(c *gin.Context) string

// New returns gin middleware that runs the sequential hook chain for
// request.pre/request.post against the given registry.
func New(reg *hooks.Registry, tenantOf TenantFunc) gin.HandlerFunc {
	if tenantOf == nil {
		tenantOf = func(c *gin.Context) string { return "" }
	}

	return func(c *gin.Context) {
		tenant := tenantOf(c)

		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		pre := hooks.NewContext(hooks.EventRequestPre, tenant)
		pre.Data["method"] = c.Request.Method
		pre.Data["path"] = c.Request.URL.Path
		pre.Data["headers"] = c.Request.Header
		pre.Data["body"] = body

		hooks.RunSequential(c.Request.Context(), pre, reg.GetHooks(hooks.EventRequestPre, tenant))

		if pre.Abort {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"abort_reason": pre.AbortReason})
			return
		}

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		post := hooks.NewContext(hooks.EventRequestPost, tenant)
		post.Data["method"] = c.Request.Method
		post.Data["path"] = c.Request.URL.Path
		post.Data["status_code"] = c.Writer.Status()
		post.Data["response_headers"] = c.Writer.Header()
		post.Data["duration_ms"] = elapsed.Milliseconds()

		hooks.RunSequential(c.Request.Context(), post, reg.GetHooks(hooks.EventRequestPost, tenant))
	}
}
