package ports

import (
	"context"

	"github.com/learnhub/course-portal/internal/core/domain"
)

// AuditRecorder accepts auth events for asynchronous persistence.
// Record must not block the request path.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}

// AuditService processes a single dequeued auth event.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// AuditRepository persists and reads back auth events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuthEvent, error)
}
