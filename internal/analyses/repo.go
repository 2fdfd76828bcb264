package analyses

import "context"

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Repo defines persistence operations for analyses.
type Repo interface {
	// Create stores the analysis together with its found-skill rows.
	Create(ctx context.Context, analysis Analysis) error
	// GetByID returns the analysis with its skill rows, or ErrNotFound.
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	// ListByUser returns the user's analyses newest first. Skill rows are
	// not loaded.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
