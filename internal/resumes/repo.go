package resumes

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "resume not found" }

// Repo is the persistence collaborator for resumes. Delete is a soft delete:
// it is irreversible through this interface and deleted records never appear
// in ListByOwner or Get.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	ListByOwner(ctx context.Context, ownerID string) ([]Resume, error)
	Get(ctx context.Context, ownerID, id string) (Resume, error)
	Update(ctx context.Context, resume Resume) error
	Delete(ctx context.Context, ownerID, id string) error
}
