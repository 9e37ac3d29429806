package suggest

// SectionKind names a resume section content can be generated for.
type SectionKind string

const (
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionSkills     SectionKind = "skills"
)

// Valid reports whether the kind is one content generation supports.
func (k SectionKind) Valid() bool {
	switch k {
	case SectionSummary, SectionExperience, SectionSkills:
		return true
	}
	return false
}

// ContentSuggestion holds ordered candidate strings for a named section.
// Results are read-only snapshots; applying one back into a document is an
// explicit caller action.
type ContentSuggestion struct {
	Section    SectionKind `json:"section"`
	Candidates []string    `json:"candidates"`
}

// MatchAnalysis is the structured result of scoring a resume against a job
// description. MatchScore is always within [0, 100] after validation.
type MatchAnalysis struct {
	MatchScore      int      `json:"matchScore"`
	MissingKeywords []string `json:"missingKeywords"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Suggestions     []string `json:"suggestions"`
}
