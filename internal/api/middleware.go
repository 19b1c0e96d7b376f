package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Pungieee/smart-property-pms/config"
)

// RoleHeader carries the caller's role on every request.
const RoleHeader = "x-role"

// RequestIDHeader carries the request id, inbound and outbound.
const RequestIDHeader = "X-Request-ID"

// Context keys set by the middleware chain.
const (
	ContextRole        = "role"
	ContextPermissions = "permissions"
	ContextRequestID   = "request_id"
)

// ForbiddenResponse is the body of every 403.
type ForbiddenResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

// RequirePermission resolves the role header and aborts with 403 before
// the handler runs when the permission is missing. The resolved role and
// permission set stay on the context for downstream use.
func RequirePermission(permission config.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := config.NormalizeRole(c.GetHeader(RoleHeader))
		permissions := config.PermissionsFor(role)

		c.Set(ContextRole, role)
		c.Set(ContextPermissions, permissions)

		if !permissions.Has(permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, ForbiddenResponse{
				Message: fmt.Sprintf("Forbidden: role %q does not have permission %q", role, permission),
				Role:    role,
			})
			return
		}

		c.Next()
	}
}

// RequestLogger tags each request with an id and logs method, path,
// status, and duration once the handler chain finishes. An inbound
// X-Request-ID is kept when it parses as a UUID.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set(ContextRequestID, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"http_method": c.Request.Method,
			"http_path":   c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("Request finished")
	}
}
