// Package export turns the rendered preview into a downloadable PDF. The
// rendering runs through a print surface; when no surface is available the
// failure is reported to the caller instead of silently producing nothing.
package export

import (
	"context"
	"errors"
)

// ErrSurfaceUnavailable is returned when no print surface is configured or
// the surface could not be opened.
var ErrSurfaceUnavailable = errors.New("print surface unavailable")

// Surface renders print-ready HTML into a PDF document.
type Surface interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}
