// Package match runs one preference submission through the remote matcher, falling back to the
// local ranking, and shapes the outcome for presenters.
package match

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nomadmatch/internal/city"
	"github.com/MrJamesThe3rd/nomadmatch/internal/matcher"
	"github.com/MrJamesThe3rd/nomadmatch/internal/preference"
)

//go:generate mockgen -source=deps.go -destination=deps_mock.go -package=match

// Remote is the semantic matching service.
type Remote interface {
	Query(ctx context.Context, req matcher.QueryRequest) ([]city.Scored, error)
}

// Fallback ranks the local catalog without network access.
type Fallback interface {
	Rank(rec preference.Record) []city.Scored
}

// Exclusions lists the cities a user asked never to be shown.
type Exclusions interface {
	Disliked(ctx context.Context, userID uuid.UUID) ([]string, error)
}
