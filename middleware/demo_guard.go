package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codexx-academy/models"
)

// GuardDecision is the outcome of evaluating a request against the demo
// restrictions.
type GuardDecision int

const (
	// GuardAllow lets the request through.
	GuardAllow GuardDecision = iota
	// GuardDeny rejects with 403. Used for features demo accounts never see.
	GuardDeny
	// GuardRedirect sends the client back to the dashboard with 303. Used
	// for write attempts on otherwise visible pages.
	GuardRedirect
)

// Pages demo accounts can view but not modify. Writes here bounce back to
// the dashboard instead of failing hard.
var demoReadOnlyPaths = []string{
	"/api/v1/dashboard/social",
	"/api/v1/dashboard/settings",
	"/api/v1/dashboard/clients",
}

// isDemoBlocked matches the destructive and administrative actions demo
// accounts may never reach, regardless of method.
func isDemoBlocked(method, path string) bool {
	if strings.HasPrefix(path, "/api/v1/dashboard/backups") {
		return true
	}
	if strings.HasSuffix(path, "/toggle-demo") {
		return true
	}
	if method == http.MethodDelete && strings.HasPrefix(path, "/api/v1/dashboard/clients/") {
		return true
	}
	return false
}

// EvaluateDemoRequest classifies one request for a demo account. Destructive
// actions deny outright; writes on the read-only pages redirect back; all
// other requests pass, so a demo account can still build out the profile,
// projects, skills and services that earn promotion. Telegram and SMTP
// settings live below /settings and stay writable.
func EvaluateDemoRequest(method, path string) GuardDecision {
	if isDemoBlocked(method, path) {
		return GuardDeny
	}
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return GuardAllow
	}
	for _, p := range demoReadOnlyPaths {
		if path == p {
			return GuardRedirect
		}
	}
	if strings.HasPrefix(path, "/api/v1/dashboard/clients/") {
		return GuardRedirect
	}
	return GuardAllow
}

// DemoGuard enforces read-only access for demo accounts. It runs after
// AuthMiddleware, which loads the account fresh from the database, so a
// promotion takes effect immediately.
func DemoGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		user, ok := value.(*models.User)
		if !ok || !user.IsDemo || user.IsAdmin() {
			c.Next()
			return
		}

		switch EvaluateDemoRequest(c.Request.Method, c.Request.URL.Path) {
		case GuardDeny:
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "This feature is not available for demo accounts",
			})
			c.Abort()
		case GuardRedirect:
			c.Header("Location", "/api/v1/dashboard")
			c.JSON(http.StatusSeeOther, gin.H{
				"status":  "error",
				"message": "Demo accounts cannot make changes. Complete your profile to unlock editing.",
			})
			c.Abort()
		default:
			c.Next()
		}
	}
}
