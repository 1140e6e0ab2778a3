package journal

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-cli/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]*VisitRecord
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]*VisitRecord),
	}
}

// Append records a visit at the end of a session's history
func (r *InMemoryRepository) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.VisitID == "" {
		return nil, errors.InvalidArgument("visit ID is required")
	}

	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	if input.Subject == nil {
		return nil, errors.InvalidArgument("subject is required")
	}

	record := &VisitRecord{
		ID:          input.VisitID,
		SessionID:   input.SessionID,
		SubjectID:   input.Subject.GetID(),
		SubjectType: input.Subject.GetType(),
		Outcome:     input.Outcome,
		VisitedAt:   input.VisitedAt,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.SessionID] = append(r.store[input.SessionID], record)

	// Return a copy to prevent external modification
	recordCopy := *record
	return &AppendOutput{Record: &recordCopy}, nil
}

// ListSession retrieves a session's visits in insertion order
func (r *InMemoryRepository) ListSession(ctx context.Context, input *ListSessionInput) (*ListSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records, exists := r.store[input.SessionID]
	if !exists {
		return nil, errors.NotFound("session not found")
	}

	// Return copies to prevent external modification
	out := make([]*VisitRecord, len(records))
	for i, record := range records {
		recordCopy := *record
		out[i] = &recordCopy
	}

	return &ListSessionOutput{Records: out}, nil
}
