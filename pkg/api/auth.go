package api

import "github.com/gin-gonic/gin"

// extractAuthor extracts the author from auth-proxy headers.
// Priority: X-Forwarded-User > X-Forwarded-Email > "api-client"
func extractAuthor(c *gin.Context) string {
	if user := c.Request.Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request.Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	return "api-client"
}

// tenantFromRequest resolves the tenant from the X-Tenant-ID header,
// falling back to "default" so single-tenant deployments need no header.
func tenantFromRequest(c *gin.Context) string {
	if tenant := c.Request.Header.Get("X-Tenant-ID"); tenant != "" {
		return tenant
	}
	return "default"
}
