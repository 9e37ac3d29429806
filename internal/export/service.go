package export

import (
	"bytes"
	"context"
	"fmt"

	"resumeforge/internal/resumes"
	"resumeforge/internal/shared/metrics"
	"resumeforge/internal/shared/storage/object"
	"resumeforge/internal/shared/telemetry"
	"resumeforge/resume/render"
)

// Service renders stored resumes into PDF artifacts. The artifact is kept in
// the object store so repeated downloads do not re-render.
type Service struct {
	Resumes *resumes.Service
	Surface Surface
	Store   object.ObjectStore
}

func NewService(resumeSvc *resumes.Service, surface Surface, store object.ObjectStore) *Service {
	return &Service{Resumes: resumeSvc, Surface: surface, Store: store}
}

// Artifact is one exported PDF.
type Artifact struct {
	FileName   string
	StorageKey string
	PDF        []byte
}

// Export renders the resume's preview projection to PDF. The PDF shows
// exactly what the live preview shows; both run through the same projection.
func (s *Service) Export(ctx context.Context, ownerID, resumeID string) (Artifact, error) {
	metrics.IncExportStarted()

	resume, err := s.Resumes.Get(ctx, ownerID, resumeID)
	if err != nil {
		metrics.IncExportFailed()
		return Artifact{}, err
	}

	if s.Surface == nil {
		metrics.IncExportFailed()
		telemetry.Error("export.surface_unavailable", map[string]any{
			"resumeId": resumeID,
		})
		return Artifact{}, ErrSurfaceUnavailable
	}

	html, err := render.PrintHTML(render.Project(resume.Document))
	if err != nil {
		metrics.IncExportFailed()
		return Artifact{}, fmt.Errorf("render print html: %w", err)
	}

	pdf, err := s.Surface.RenderPDF(ctx, html)
	if err != nil {
		metrics.IncExportFailed()
		telemetry.Error("export.render_failed", map[string]any{
			"resumeId": resumeID,
			"error":    err.Error(),
		})
		return Artifact{}, err
	}

	fileName := resume.Name + ".pdf"
	artifact := Artifact{FileName: fileName, PDF: pdf}

	if s.Store != nil {
		key, _, _, err := s.Store.Save(ctx, ownerID, fileName, bytes.NewReader(pdf))
		if err != nil {
			// The artifact is still usable; losing the stored copy only
			// costs a re-render on the next download.
			telemetry.Error("export.store_failed", map[string]any{
				"resumeId": resumeID,
				"error":    err.Error(),
			})
		} else {
			artifact.StorageKey = key
		}
	}

	return artifact, nil
}
