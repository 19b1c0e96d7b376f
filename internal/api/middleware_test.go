package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pungieee/smart-property-pms/config"
)

func newGateRouter(permission config.Permission) *gin.Engine {
	router := gin.New()
	router.GET("/probe", RequirePermission(permission), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString(ContextRole)})
	})
	return router
}

func TestRequirePermissionNormalizesRole(t *testing.T) {
	router := newGateRouter(config.PermViewOverview)

	w := performRequest(router, "GET", "/probe", "Admin")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "admin", body["role"])
}

func TestRequirePermissionDefaultsToSales(t *testing.T) {
	router := newGateRouter(config.PermViewSales)

	w := performRequest(router, "GET", "/probe", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "sales", body["role"])
}

func TestRequirePermissionRejectsMissingPermission(t *testing.T) {
	router := newGateRouter(config.PermViewMaintenance)

	w := performRequest(router, "GET", "/probe", "")

	require.Equal(t, http.StatusForbidden, w.Code)
	var body ForbiddenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "sales", body.Role)
	assert.Contains(t, body.Message, "view_maintenance")
}

func TestRequirePermissionRejectsUnknownRole(t *testing.T) {
	router := newGateRouter(config.PermViewOverview)

	w := performRequest(router, "GET", "/probe", "burglar")

	require.Equal(t, http.StatusForbidden, w.Code)
	var body ForbiddenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "burglar", body.Role)
}

func newLoggingRouter() (*gin.Engine, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requestId": c.GetString(ContextRequestID)})
	})
	return router, hook
}

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	router, _ := newLoggingRouter()

	w := performRequest(router, "GET", "/probe", "")

	require.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(requestID)
	assert.NoError(t, err)
}

func TestRequestLoggerKeepsValidRequestID(t *testing.T) {
	router, _ := newLoggingRouter()
	inbound := uuid.New().String()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	req.Header.Set(RequestIDHeader, inbound)
	router.ServeHTTP(w, req)

	assert.Equal(t, inbound, w.Header().Get(RequestIDHeader))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, inbound, body["requestId"])
}

func TestRequestLoggerReplacesInvalidRequestID(t *testing.T) {
	router, _ := newLoggingRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	router.ServeHTTP(w, req)

	outbound := w.Header().Get(RequestIDHeader)
	assert.NotEqual(t, "not-a-uuid", outbound)
	_, err := uuid.Parse(outbound)
	assert.NoError(t, err)
}

func TestRequestLoggerEmitsAccessLog(t *testing.T) {
	router, hook := newLoggingRouter()

	w := performRequest(router, "GET", "/probe", "")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, "Request finished", entry.Message)
	assert.Equal(t, "GET", entry.Data["http_method"])
	assert.Equal(t, "/probe", entry.Data["http_path"])
	assert.Equal(t, http.StatusOK, entry.Data["status_code"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry.Data["request_id"])
	assert.Contains(t, entry.Data, "duration_ms")
}
