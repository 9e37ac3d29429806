package resumes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"resumeforge/resume/model"
)

// MemoryRepo keeps resumes in process memory. When seeding is enabled, an
// owner's first List call plants one starter resume, matching the mock data a
// fresh dashboard shows.
type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]Resume
	seeded  map[string]bool
	seed    bool
}

// NewMemoryRepo builds an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		records: make(map[string]Resume),
		seeded:  make(map[string]bool),
	}
}

// NewSeededMemoryRepo builds an in-memory repo that seeds each new owner with
// a starter resume.
func NewSeededMemoryRepo() *MemoryRepo {
	repo := NewMemoryRepo()
	repo.seed = true
	return repo
}

func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seeded[resume.OwnerID] = true
	r.records[resume.ID] = resume
	return nil
}

func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seed && !r.seeded[ownerID] {
		r.seeded[ownerID] = true
		starter := seedResume(ownerID)
		r.records[starter.ID] = starter
	}

	var out []Resume
	for _, rec := range r.records {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, ownerID, id string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok || rec.OwnerID != ownerID {
		return Resume{}, ErrNotFound
	}
	return rec, nil
}

func (r *MemoryRepo) Update(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.records[resume.ID]
	if !ok || existing.OwnerID != resume.OwnerID {
		return ErrNotFound
	}
	resume.CreatedAt = existing.CreatedAt
	resume.UpdatedAt = time.Now().UTC()
	r.records[resume.ID] = resume
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, ownerID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok || rec.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func seedResume(ownerID string) Resume {
	now := time.Now().UTC()
	return Resume{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      "Software Developer Resume",
		Template:  "Professional",
		Document:  model.SeedDocument(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
