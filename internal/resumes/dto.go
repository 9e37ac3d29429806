package resumes

import (
	"time"

	"resumeforge/resume/model"
)

// ResumeResponse is the outward-facing representation of a resume record.
type ResumeResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Template   string         `json:"template"`
	Completion int            `json:"completion"`
	Document   model.Document `json:"document"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// ResumeSummary is the card-sized representation the dashboard lists.
type ResumeSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Template   string    `json:"template"`
	Completion int       `json:"completion"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		ID:         r.ID,
		Name:       r.Name,
		Template:   r.Template,
		Completion: Completion(r.Document),
		Document:   r.Document,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toSummary(r Resume) ResumeSummary {
	return ResumeSummary{
		ID:         r.ID,
		Name:       r.Name,
		Template:   r.Template,
		Completion: Completion(r.Document),
		UpdatedAt:  r.UpdatedAt,
	}
}

func toSummaries(records []Resume) []ResumeSummary {
	out := make([]ResumeSummary, 0, len(records))
	for _, r := range records {
		out = append(out, toSummary(r))
	}
	return out
}
