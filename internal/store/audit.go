package store

import (
	"context"

	"sama-store/internal/domain"
	"sama-store/internal/storage"

	"github.com/google/uuid"
)

// Log appends an audit entry, newest first, evicting beyond the cap.
func (s *Store) Log(ctx context.Context, action, actor string, category domain.AuditCategory, outcome domain.AuditOutcome) {
	entry := domain.AuditLog{
		ID:        uuid.NewString(),
		Timestamp: timeNow(),
		Actor:     actor,
		Action:    action,
		Category:  category,
		Outcome:   outcome,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append([]domain.AuditLog{entry}, s.logs...)
	if len(s.logs) > domain.MaxAuditEntries {
		s.logs = s.logs[:domain.MaxAuditEntries]
	}
	s.persist(ctx, storage.CollectionLogs, s.logs)
}

// Logs returns the retained audit trail, newest first.
func (s *Store) Logs() []domain.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditLog, len(s.logs))
	copy(out, s.logs)
	return out
}
