// Package edit implements the mutation operations of the resume document
// model. Every operation takes the current document by value and returns a new
// snapshot with one field or subtree replaced; shared slices are copied before
// modification so older snapshots stay intact.
package edit

import (
	"strings"

	"github.com/google/uuid"

	"resumeforge/resume/model"
)

// Scalar field paths accepted by UpdateField.
const (
	FieldName     = "personalInfo.name"
	FieldEmail    = "personalInfo.email"
	FieldPhone    = "personalInfo.phone"
	FieldLocation = "personalInfo.location"
	FieldTitle    = "personalInfo.title"
	FieldSummary  = "summary"
)

// Entry field names accepted by UpdateEntry.
const (
	EntryOrganization = "organization"
	EntryRole         = "role"
	EntryField        = "field"
	EntryLocation     = "location"
	EntryStartDate    = "startDate"
	EntryEndDate      = "endDate"
	EntryDescription  = "description"
)

// Direction of a MoveEntry call.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// UpdateField replaces a scalar field (personal info or summary). No length or
// format validation is applied; an unknown path is the only error.
func UpdateField(doc model.Document, path, value string) (model.Document, error) {
	switch path {
	case FieldName:
		doc.PersonalInfo.Name = value
	case FieldEmail:
		doc.PersonalInfo.Email = value
	case FieldPhone:
		doc.PersonalInfo.Phone = value
	case FieldLocation:
		doc.PersonalInfo.Location = value
	case FieldTitle:
		doc.PersonalInfo.Title = value
	case FieldSummary:
		doc.Summary = value
	default:
		return doc, UnknownFieldError{Field: path}
	}
	return doc, nil
}

// InsertEntry appends a fresh entry with a generated id to the given section
// and returns the new document along with the id.
func InsertEntry(doc model.Document, section model.Section) (model.Document, string, error) {
	if !section.Valid() {
		return doc, "", UnknownFieldError{Field: string(section)}
	}
	entry := model.Entry{ID: uuid.NewString()}
	doc = replaceEntries(doc, section, append(copyEntries(doc.Entries(section)), entry))
	return doc, entry.ID, nil
}

// UpdateEntry replaces one string field of the entry matching id.
func UpdateEntry(doc model.Document, section model.Section, id, field, value string) (model.Document, error) {
	if !section.Valid() {
		return doc, UnknownFieldError{Field: string(section)}
	}
	entries := copyEntries(doc.Entries(section))
	idx := indexOf(entries, id)
	if idx < 0 {
		return doc, NotFoundError{Section: string(section), ID: id}
	}
	switch field {
	case EntryOrganization:
		entries[idx].Organization = value
	case EntryRole:
		entries[idx].Role = value
	case EntryField:
		entries[idx].Field = value
	case EntryLocation:
		entries[idx].Location = value
	case EntryStartDate:
		entries[idx].StartDate = value
	case EntryEndDate:
		entries[idx].EndDate = value
	case EntryDescription:
		entries[idx].Description = value
	default:
		return doc, UnknownFieldError{Field: field}
	}
	return replaceEntries(doc, section, entries), nil
}

// SetCurrent flips the "current position" flag of the entry matching id. The
// end date is left untouched; rendering decides how to display it.
func SetCurrent(doc model.Document, section model.Section, id string, current bool) (model.Document, error) {
	if !section.Valid() {
		return doc, UnknownFieldError{Field: string(section)}
	}
	entries := copyEntries(doc.Entries(section))
	idx := indexOf(entries, id)
	if idx < 0 {
		return doc, NotFoundError{Section: string(section), ID: id}
	}
	entries[idx].Current = current
	return replaceEntries(doc, section, entries), nil
}

// RemoveEntry removes the entry matching id.
func RemoveEntry(doc model.Document, section model.Section, id string) (model.Document, error) {
	if !section.Valid() {
		return doc, UnknownFieldError{Field: string(section)}
	}
	entries := doc.Entries(section)
	idx := indexOf(entries, id)
	if idx < 0 {
		return doc, NotFoundError{Section: string(section), ID: id}
	}
	out := make([]model.Entry, 0, len(entries)-1)
	out = append(out, entries[:idx]...)
	out = append(out, entries[idx+1:]...)
	return replaceEntries(doc, section, out), nil
}

// MoveEntry swaps the entry at index with its neighbor in the given direction.
// Moving the first entry up or the last entry down is a no-op, as is an index
// outside the current bounds (a rapid double-click can hand us a stale index;
// clamping keeps the list order intact).
func MoveEntry(doc model.Document, section model.Section, index int, dir Direction) (model.Document, error) {
	if !section.Valid() {
		return doc, UnknownFieldError{Field: string(section)}
	}
	entries := doc.Entries(section)
	switch dir {
	case MoveUp:
		if index <= 0 || index >= len(entries) {
			return doc, nil
		}
		swapped := copyEntries(entries)
		swapped[index], swapped[index-1] = swapped[index-1], swapped[index]
		return replaceEntries(doc, section, swapped), nil
	case MoveDown:
		if index < 0 || index >= len(entries)-1 {
			return doc, nil
		}
		swapped := copyEntries(entries)
		swapped[index], swapped[index+1] = swapped[index+1], swapped[index]
		return replaceEntries(doc, section, swapped), nil
	default:
		return doc, UnknownFieldError{Field: string(dir)}
	}
}

// SetSkills replaces the skills list with the comma-separated input, trimming
// whitespace around each piece. Empty pieces are dropped, so a trailing comma
// does not leave a blank skill behind (the original editor kept them).
func SetSkills(doc model.Document, csv string) model.Document {
	var skills []string
	for _, piece := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	doc.Skills = skills
	return doc
}

func indexOf(entries []model.Entry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

func copyEntries(entries []model.Entry) []model.Entry {
	return append([]model.Entry(nil), entries...)
}

func replaceEntries(doc model.Document, section model.Section, entries []model.Entry) model.Document {
	if section == model.SectionEducation {
		doc.Education = entries
	} else {
		doc.Experience = entries
	}
	return doc
}
