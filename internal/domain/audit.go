package domain

import "time"

// AuditCategory classifies an audit log entry.
type AuditCategory string

const (
	AuditSecurity  AuditCategory = "security"
	AuditOperation AuditCategory = "operation"
	AuditAuth      AuditCategory = "auth"
)

// AuditOutcome records how the logged action ended.
type AuditOutcome string

const (
	OutcomeSuccess AuditOutcome = "success"
	OutcomeWarning AuditOutcome = "warning"
	OutcomeError   AuditOutcome = "error"
)

// MaxAuditEntries caps the retained audit log; the oldest entries are evicted
// first.
const MaxAuditEntries = 100

// AuditLog is one append-only audit trail entry.
type AuditLog struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Actor     string        `json:"actor"`
	Action    string        `json:"action"`
	Category  AuditCategory `json:"category"`
	Outcome   AuditOutcome  `json:"outcome"`
}
