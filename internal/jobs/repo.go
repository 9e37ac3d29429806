package jobs

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "job description not found" }

// Repo is the persistence collaborator for job descriptions.
type Repo interface {
	Create(ctx context.Context, job Job) error
	ListByOwner(ctx context.Context, ownerID string) ([]Job, error)
	Get(ctx context.Context, ownerID, id string) (Job, error)
	Delete(ctx context.Context, ownerID, id string) error
}
