//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"campus-parking/internal/handler/dto/request"
	"campus-parking/internal/pkg/cookie"
	"campus-parking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin returns the session cookie issued for the admin password.
func LoginAdmin(t *testing.T, router *gin.Engine, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	adminCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, adminCookie, "Admin token not found in cookies")
	require.NotEmpty(t, adminCookie.Value, "Admin token cookie is empty")

	return adminCookie
}
