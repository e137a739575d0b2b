package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateDemoRequestAllowsReads(t *testing.T) {
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodGet, "/api/v1/dashboard"))
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodGet, "/api/v1/dashboard/projects"))
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodHead, "/api/v1/dashboard/clients"))
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodOptions, "/api/v1/dashboard/messages"))
}

func TestEvaluateDemoRequestAllowsContentWrites(t *testing.T) {
	// Demo accounts build out their portfolio to earn full access, so the
	// content and notification endpoints stay writable.
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodPost, "/api/v1/dashboard/projects"))
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodPut, "/api/v1/dashboard/skills"))
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodPut, "/api/v1/dashboard/about"))
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodPut, "/api/v1/dashboard/general"))
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodPost, "/api/v1/dashboard/services"))
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodPut, "/api/v1/dashboard/contact"))
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodPut, "/api/v1/dashboard/settings/telegram"))
	assert.Equal(t, GuardAllow, EvaluateDemoRequest(http.MethodPut, "/api/v1/dashboard/settings/smtp"))
}

func TestEvaluateDemoRequestRedirectsReadOnlyPageWrites(t *testing.T) {
	assert.Equal(t, GuardRedirect, EvaluateDemoRequest(http.MethodPut, "/api/v1/dashboard/social"))
	assert.Equal(t, GuardRedirect, EvaluateDemoRequest(http.MethodPut, "/api/v1/dashboard/settings"))
	assert.Equal(t, GuardRedirect, EvaluateDemoRequest(http.MethodPost, "/api/v1/dashboard/clients"))
	assert.Equal(t, GuardRedirect, EvaluateDemoRequest(http.MethodPut, "/api/v1/dashboard/clients/123"))
}

func TestEvaluateDemoRequestDeniesDestructiveActions(t *testing.T) {
	// Destructive and administrative actions stay blocked even for reads.
	assert.Equal(t, GuardDeny, EvaluateDemoRequest(http.MethodGet, "/api/v1/dashboard/backups"))
	assert.Equal(t, GuardDeny, EvaluateDemoRequest(http.MethodPost, "/api/v1/dashboard/backups"))
	assert.Equal(t, GuardDeny, EvaluateDemoRequest(http.MethodDelete, "/api/v1/dashboard/clients/123"))
	assert.Equal(t, GuardDeny, EvaluateDemoRequest(http.MethodPost, "/api/v1/users/abc/toggle-demo"))
}
