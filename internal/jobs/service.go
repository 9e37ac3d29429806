package jobs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidInput marks rejected caller input.
var ErrInvalidInput = errors.New("invalid input")

// Service contains business logic for job descriptions.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create stores a new job description. Title, company, and description are
// all required.
func (s *Service) Create(ctx context.Context, ownerID, title, company, description string) (Job, error) {
	title = strings.TrimSpace(title)
	company = strings.TrimSpace(company)
	description = strings.TrimSpace(description)
	if title == "" || company == "" || description == "" {
		return Job{}, ErrInvalidInput
	}

	job := Job{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Company:     company,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// List returns the owner's saved job descriptions, optionally filtered by a
// search term matched against title and company.
func (s *Service) List(ctx context.Context, ownerID, search string) ([]Job, error) {
	records, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return records, nil
	}
	var out []Job
	for _, job := range records {
		if strings.Contains(strings.ToLower(job.Title), search) ||
			strings.Contains(strings.ToLower(job.Company), search) {
			out = append(out, job)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (Job, error) {
	return s.Repo.Get(ctx, ownerID, id)
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	return s.Repo.Delete(ctx, ownerID, id)
}
