package resumes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumeforge/resume/model"
)

// ErrInvalidInput marks rejected caller input.
var ErrInvalidInput = errors.New("invalid input")

const defaultTemplate = "Modern"

// Service contains business logic for resume records.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create stores a new resume seeded with the starter document.
func (s *Service) Create(ctx context.Context, ownerID, name, template string) (Resume, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Resume{}, ErrInvalidInput
	}
	if strings.TrimSpace(template) == "" {
		template = defaultTemplate
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		Template:  template,
		Document:  model.SeedDocument(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// CreateFromText stores a new resume whose summary is pre-filled with
// imported text (PDF/DOCX import path).
func (s *Service) CreateFromText(ctx context.Context, ownerID, name, text string) (Resume, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(text) == "" {
		return Resume{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		Template:  defaultTemplate,
		Document:  model.Document{Summary: strings.TrimSpace(text)},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]Resume, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (Resume, error) {
	return s.Repo.Get(ctx, ownerID, id)
}

// Patch holds the updatable fields of a resume. Nil fields are left as-is.
type Patch struct {
	Name     *string
	Template *string
	Document *model.Document
}

// Update applies a partial update and returns the stored record.
func (s *Service) Update(ctx context.Context, ownerID, id string, patch Patch) (Resume, error) {
	resume, err := s.Repo.Get(ctx, ownerID, id)
	if err != nil {
		return Resume{}, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return Resume{}, ErrInvalidInput
		}
		resume.Name = name
	}
	if patch.Template != nil {
		resume.Template = *patch.Template
	}
	if patch.Document != nil {
		resume.Document = *patch.Document
	}
	resume.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// SaveDocument replaces the document payload of a stored resume.
func (s *Service) SaveDocument(ctx context.Context, ownerID, id string, doc model.Document) (Resume, error) {
	return s.Update(ctx, ownerID, id, Patch{Document: &doc})
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	return s.Repo.Delete(ctx, ownerID, id)
}
