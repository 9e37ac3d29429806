package resumes

import (
	"time"

	"resumeforge/resume/model"
)

// Resume is a stored resume record: dashboard metadata plus the document
// payload the editor operates on.
type Resume struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"-"`
	Name      string         `json:"name"`
	Template  string         `json:"template"`
	Document  model.Document `json:"document"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Completion estimates how filled-in the document is, as a 0-100 percentage.
// Counted: each personal info field, the summary, and each non-empty section
// list. Purely presentational; the dashboard shows it on resume cards.
func Completion(doc model.Document) int {
	total := 0
	filled := 0

	count := func(ok bool) {
		total++
		if ok {
			filled++
		}
	}

	count(doc.PersonalInfo.Name != "")
	count(doc.PersonalInfo.Email != "")
	count(doc.PersonalInfo.Phone != "")
	count(doc.PersonalInfo.Location != "")
	count(doc.PersonalInfo.Title != "")
	count(doc.Summary != "")
	count(len(doc.Experience) > 0)
	count(len(doc.Education) > 0)
	count(len(doc.Skills) > 0)

	return filled * 100 / total
}
