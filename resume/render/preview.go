// Package render projects a resume document into its display structure. The
// live editor preview and the print/export shell both consume the same
// projection, so the two views can never drift apart.
package render

import (
	"fmt"
	"strings"
	"time"

	"resumeforge/resume/model"
)

// Preview is the pure projection of a document: everything the reader sees,
// nothing about how it is styled.
type Preview struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Contact  []string  `json:"contact"`
	Sections []Section `json:"sections"`
}

// Section is one rendered resume section. Exactly one of Paragraph, Items or
// Tags is populated depending on the section kind.
type Section struct {
	Heading   string   `json:"heading"`
	Paragraph string   `json:"paragraph,omitempty"`
	Items     []Item   `json:"items,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// Item is one experience or education entry in display form.
type Item struct {
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading"`
	DateRange  string   `json:"dateRange"`
	Lines      []string `json:"lines,omitempty"`
}

// Project builds the preview for a document. Sections whose underlying data
// is empty are omitted entirely, never rendered as empty headers.
func Project(doc model.Document) Preview {
	p := Preview{
		Name:  doc.PersonalInfo.Name,
		Title: doc.PersonalInfo.Title,
	}
	for _, part := range []string{doc.PersonalInfo.Email, doc.PersonalInfo.Phone, doc.PersonalInfo.Location} {
		if part != "" {
			p.Contact = append(p.Contact, part)
		}
	}

	if doc.Summary != "" {
		p.Sections = append(p.Sections, Section{Heading: "Summary", Paragraph: doc.Summary})
	}
	if len(doc.Experience) > 0 {
		p.Sections = append(p.Sections, Section{Heading: "Experience", Items: experienceItems(doc.Experience)})
	}
	if len(doc.Education) > 0 {
		p.Sections = append(p.Sections, Section{Heading: "Education", Items: educationItems(doc.Education)})
	}
	if len(doc.Skills) > 0 {
		p.Sections = append(p.Sections, Section{Heading: "Skills", Tags: append([]string(nil), doc.Skills...)})
	}
	return p
}

func experienceItems(entries []model.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		sub := e.Organization
		if e.Location != "" {
			sub = fmt.Sprintf("%s, %s", e.Organization, e.Location)
		}
		items = append(items, Item{
			Heading:    e.Role,
			Subheading: sub,
			DateRange:  DateRange(e.StartDate, e.EndDate, e.Current),
			Lines:      descriptionLines(e.Description),
		})
	}
	return items
}

func educationItems(entries []model.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{
			Heading:    fmt.Sprintf("%s in %s", e.Role, e.Field),
			Subheading: e.Organization,
			DateRange:  DateRange(e.StartDate, e.EndDate, e.Current),
			Lines:      descriptionLines(e.Description),
		})
	}
	return items
}

// DateRange renders the display form of an entry's date span. A current
// position ends in the literal "Present"; a missing or unparseable date
// renders as an empty string on its side of the range.
func DateRange(start, end string, current bool) string {
	right := "Present"
	if !current {
		right = FormatMonth(end)
	}
	return fmt.Sprintf("%s - %s", FormatMonth(start), right)
}

// FormatMonth turns a YYYY-MM value into "Jan 2006" form.
func FormatMonth(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2006")
}

// descriptionLines preserves embedded newlines as distinct display lines. No
// markdown parsing is performed; bullets are whatever the author typed.
func descriptionLines(description string) []string {
	if description == "" {
		return nil
	}
	return strings.Split(description, "\n")
}
