package jobs

import "time"

// Job is a saved job description. Users collect these to score and tailor
// their resumes against specific openings.
type Job struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"-"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"dateAdded"`
}
