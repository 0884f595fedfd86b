package store

import (
	"context"
	"fmt"
	"testing"

	"sama-store/internal/domain"
)

func TestAuditLogNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Log(ctx, "first", "admin@sama.local", domain.AuditOperation, domain.OutcomeSuccess)
	s.Log(ctx, "second", "admin@sama.local", domain.AuditSecurity, domain.OutcomeWarning)

	logs := s.Logs()
	if len(logs) != 2 {
		t.Fatalf("%d entries, want 2", len(logs))
	}
	if logs[0].Action != "second" || logs[1].Action != "first" {
		t.Fatalf("entries not newest first: %s, %s", logs[0].Action, logs[1].Action)
	}
	if logs[0].Category != domain.AuditSecurity || logs[0].Outcome != domain.OutcomeWarning {
		t.Errorf("entry fields: %+v", logs[0])
	}
}

func TestAuditLogEvictsBeyondCap(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for i := 0; i < domain.MaxAuditEntries+1; i++ {
		s.Log(ctx, fmt.Sprintf("action %d", i), "admin@sama.local", domain.AuditOperation, domain.OutcomeSuccess)
	}

	logs := s.Logs()
	if len(logs) != domain.MaxAuditEntries {
		t.Fatalf("%d entries retained, want %d", len(logs), domain.MaxAuditEntries)
	}
	if logs[0].Action != fmt.Sprintf("action %d", domain.MaxAuditEntries) {
		t.Errorf("newest entry is %q", logs[0].Action)
	}
	// action 0 was the oldest and must be gone.
	if logs[len(logs)-1].Action != "action 1" {
		t.Errorf("oldest retained entry is %q, want action 1", logs[len(logs)-1].Action)
	}
}
