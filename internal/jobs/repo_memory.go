package jobs

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo keeps job descriptions in process memory. When seeding is
// enabled, an owner's first List call plants two sample postings so the jobs
// page is never empty on first visit.
type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]Job
	seeded  map[string]bool
	seed    bool
}

// NewMemoryRepo builds an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		records: make(map[string]Job),
		seeded:  make(map[string]bool),
	}
}

// NewSeededMemoryRepo builds an in-memory repo that seeds each new owner with
// sample postings.
func NewSeededMemoryRepo() *MemoryRepo {
	repo := NewMemoryRepo()
	repo.seed = true
	return repo
}

func (r *MemoryRepo) Create(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seeded[job.OwnerID] = true
	r.records[job.ID] = job
	return nil
}

func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seed && !r.seeded[ownerID] {
		r.seeded[ownerID] = true
		for _, job := range seedJobs(ownerID) {
			r.records[job.ID] = job
		}
	}

	var out []Job
	for _, rec := range r.records {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, ownerID, id string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok || rec.OwnerID != ownerID {
		return Job{}, ErrNotFound
	}
	return rec, nil
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

func seedJobs(ownerID string) []Job {
	return []Job{
		{
			ID:      uuid.NewString(),
			OwnerID: ownerID,
			Title:   "Senior Frontend Developer",
			Company: "Tech Innovations Inc.",
			Description: "We are seeking a skilled Senior Frontend Developer to join our team. " +
				"The ideal candidate has experience with React, TypeScript, and modern frontend architecture. " +
				"Responsibilities include developing user-facing features, optimizing application performance, " +
				"and collaborating with designers and backend engineers.\n\nRequirements:\n" +
				"- 5+ years of experience with React\n- Strong TypeScript skills\n" +
				"- Experience with state management (Redux, Context API)\n" +
				"- Knowledge of modern frontend build tools\n- Familiarity with CI/CD pipelines",
			CreatedAt: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:      uuid.NewString(),
			OwnerID: ownerID,
			Title:   "Full Stack Developer",
			Company: "Growth Solutions",
			Description: "Growth Solutions is looking for a Full Stack Developer to work on our SaaS platform. " +
				"You'll be responsible for developing and maintaining features across the entire stack.\n\nRequirements:\n" +
				"- 3+ years of experience in full stack development\n- Proficiency in React, Node.js, and Express\n" +
				"- Experience with SQL and NoSQL databases\n- Understanding of cloud infrastructure (AWS or Azure)\n" +
				"- Knowledge of Docker and containerization",
			CreatedAt: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}
