package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codexx-academy/config"
)

// Security logs are capped so the files stay bounded; older entries fall off
// the front.
const auditLogCap = 1000

// AuditEvent is one security-relevant action.
type AuditEvent struct {
	Timestamp string `json:"timestamp"`
	Username  string `json:"username,omitempty"`
	Action    string `json:"action"`
	Detail    string `json:"detail,omitempty"`
	IP        string `json:"ip,omitempty"`
}

// IPActivity is one request record in the per-address activity log.
type IPActivity struct {
	Timestamp string `json:"timestamp"`
	IP        string `json:"ip"`
	Path      string `json:"path"`
	Method    string `json:"method"`
	UserAgent string `json:"user_agent,omitempty"`
}

var auditMu sync.Mutex

func appendCapped(path string, entry interface{}) error {
	auditMu.Lock()
	defer auditMu.Unlock()

	var entries []json.RawMessage
	if raw, err := os.ReadFile(path); err == nil {
		// A corrupt log starts over rather than blocking writes.
		_ = json.Unmarshal(raw, &entries)
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	entries = append(entries, encoded)
	if len(entries) > auditLogCap {
		entries = entries[len(entries)-auditLogCap:]
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

// RecordAudit appends a security event to the audit log. Failures are logged
// and swallowed; auditing never breaks a request.
func RecordAudit(username, action, detail, ip string) {
	event := AuditEvent{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		Username:  username,
		Action:    action,
		Detail:    detail,
		IP:        ip,
	}
	path := filepath.Join(config.SecurityDir(), "audit.json")
	if err := appendCapped(path, event); err != nil {
		zap.L().Warn("audit log write failed", zap.Error(err))
	}
}

// RecordIPActivity appends one request to the IP activity log.
func RecordIPActivity(c *gin.Context) {
	activity := IPActivity{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		IP:        ClientIP(c),
		Path:      c.Request.URL.Path,
		Method:    c.Request.Method,
		UserAgent: c.Request.UserAgent(),
	}
	path := filepath.Join(config.SecurityDir(), "ip_activity.json")
	if err := appendCapped(path, activity); err != nil {
		zap.L().Warn("ip activity log write failed", zap.Error(err))
	}
}

// ClientIP resolves the request address, honoring X-Forwarded-For when a
// proxy sits in front.
func ClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.ClientIP()
}
