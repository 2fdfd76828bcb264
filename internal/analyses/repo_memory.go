package analyses

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepo keeps analyses in process for dev runs and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Analysis
	byUser map[string][]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Analysis),
		byUser: make(map[string][]string),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	analysis.Skills = slices.Clone(analysis.Skills)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[analysis.ID]; !exists {
		r.byUser[analysis.UserID] = append(r.byUser[analysis.UserID], analysis.ID)
	}
	r.byID[analysis.ID] = analysis
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byID[analysisID]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	analysis.Skills = slices.Clone(analysis.Skills)
	return analysis, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)

	r.mu.RLock()
	ids := r.byUser[userID]
	items := make([]Analysis, 0, len(ids))
	for _, id := range ids {
		a := r.byID[id]
		a.Skills = nil
		items = append(items, a)
	}
	r.mu.RUnlock()

	slices.SortStableFunc(items, func(a, b Analysis) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if offset >= len(items) {
		return []Analysis{}, nil
	}
	return items[offset:min(offset+limit, len(items))], nil
}
