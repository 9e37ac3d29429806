package model

// Section identifies one of the two entry lists in a document.
type Section string

const (
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
)

// Valid reports whether the section names an entry list.
func (s Section) Valid() bool {
	return s == SectionExperience || s == SectionEducation
}

// Document is the canonical in-memory resume payload. Values are treated as
// immutable snapshots: editing operations return a new Document and never
// mutate nested slices in place, so a reference held by the preview stays
// consistent while the editor produces the next snapshot.
type Document struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Entry      `json:"experience"`
	Education    []Entry      `json:"education"`
	Skills       []string     `json:"skills"`
}

// PersonalInfo captures top-of-resume contact and identity details.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Title    string `json:"title"`
}

// Entry is one experience or education item. Experience entries use
// Organization for the company and Role for the position; education entries
// use Organization for the institution, Role for the degree and Field for the
// field of study. Location is only meaningful for experience entries.
//
// StartDate and EndDate are YYYY-MM strings. When Current is true EndDate is
// not read for display (it renders as "Present") but it is not cleared in
// storage, so callers must not rely on it being empty.
type Entry struct {
	ID           string `json:"id"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Field        string `json:"field,omitempty"`
	Location     string `json:"location,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Entries returns the entry list for the given section. The returned slice is
// the document's own; callers that mutate must go through resume/edit.
func (d Document) Entries(section Section) []Entry {
	if section == SectionEducation {
		return d.Education
	}
	return d.Experience
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := d
	out.Experience = append([]Entry(nil), d.Experience...)
	out.Education = append([]Entry(nil), d.Education...)
	out.Skills = append([]string(nil), d.Skills...)
	return out
}

// Empty reports whether the document carries no user content at all.
func (d Document) Empty() bool {
	return d.PersonalInfo == PersonalInfo{} &&
		d.Summary == "" &&
		len(d.Experience) == 0 &&
		len(d.Education) == 0 &&
		len(d.Skills) == 0
}
