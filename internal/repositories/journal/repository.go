// Package journal stores the rooms visited during an exploration session.
// Entries live for the process only; nothing survives a restart.
package journal

//go:generate mockgen -destination=mock/mock_repository.go -package=journalmock github.com/KirkDiggler/rpg-cli/internal/repositories/journal Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-cli/internal/encounters"
)

// Repository defines the storage interface for visit records
type Repository interface {
	// Append records a visit at the end of a session's history
	Append(ctx context.Context, input *AppendInput) (*AppendOutput, error)

	// ListSession retrieves a session's visits in insertion order
	ListSession(ctx context.Context, input *ListSessionInput) (*ListSessionOutput, error)
}

// VisitRecord is one visited room in a session's history
type VisitRecord struct {
	ID          string
	SessionID   string
	SubjectID   string
	SubjectType string
	Outcome     encounters.Outcome
	VisitedAt   time.Time
}

// AppendInput defines the request for recording a visit
type AppendInput struct {
	VisitID   string
	SessionID string
	// Subject is the entity that was visited, typically a room
	Subject   core.Entity
	Outcome   encounters.Outcome
	VisitedAt time.Time
}

// AppendOutput defines the response for recording a visit
type AppendOutput struct {
	Record *VisitRecord
}

// ListSessionInput defines the request for listing a session's visits
type ListSessionInput struct {
	SessionID string
}

// ListSessionOutput defines the response for listing a session's visits
type ListSessionOutput struct {
	Records []*VisitRecord
}
