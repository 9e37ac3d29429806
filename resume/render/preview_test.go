package render_test

import (
	"html"
	"strings"
	"testing"

	"resumeforge/resume/model"
	"resumeforge/resume/render"
)

func TestDateRange(t *testing.T) {
	cases := []struct {
		start, end string
		current    bool
		want       string
	}{
		{"2022-01", "", true, "Jan 2022 - Present"},
		{"2020-03", "2021-12", false, "Mar 2020 - Dec 2021"},
		{"", "2021-12", false, " - Dec 2021"},
		{"2020-03", "", false, "Mar 2020 - "},
		{"garbage", "2021-12", false, " - Dec 2021"},
	}
	for _, tc := range cases {
		if got := render.DateRange(tc.start, tc.end, tc.current); got != tc.want {
			t.Fatalf("DateRange(%q, %q, %v) = %q, want %q", tc.start, tc.end, tc.current, got, tc.want)
		}
	}
}

func TestProjectOmitsEmptySections(t *testing.T) {
	doc := model.Document{
		PersonalInfo: model.PersonalInfo{Name: "Jane Roe", Email: "jane@example.com"},
		Summary:      "A summary.",
	}
	p := render.Project(doc)

	if len(p.Sections) != 1 || p.Sections[0].Heading != "Summary" {
		t.Fatalf("expected only the Summary section, got %+v", p.Sections)
	}
	if len(p.Contact) != 1 || p.Contact[0] != "jane@example.com" {
		t.Fatalf("expected one contact part, got %v", p.Contact)
	}
}

func TestProjectPreservesDescriptionNewlines(t *testing.T) {
	doc := model.SeedDocument()
	p := render.Project(doc)

	var experience *render.Section
	for i := range p.Sections {
		if p.Sections[i].Heading == "Experience" {
			experience = &p.Sections[i]
		}
	}
	if experience == nil {
		t.Fatalf("missing Experience section")
	}
	if got := len(experience.Items[0].Lines); got != 3 {
		t.Fatalf("expected 3 description lines, got %d", got)
	}
	if !strings.HasPrefix(experience.Items[0].Lines[0], "• ") {
		t.Fatalf("bullet text altered: %q", experience.Items[0].Lines[0])
	}
}

func TestProjectSharedByEditorAndPreviewPaths(t *testing.T) {
	// Both consumers call the same function; equal inputs must project
	// identically even across copies.
	doc := model.SeedDocument()
	a := render.Project(doc)
	b := render.Project(doc.Clone())
	if len(a.Sections) != len(b.Sections) {
		t.Fatalf("projection diverged: %d vs %d sections", len(a.Sections), len(b.Sections))
	}
}

func TestPrintHTMLPreservesVisibleText(t *testing.T) {
	doc := model.SeedDocument()
	p := render.Project(doc)

	out, err := render.PrintHTML(p)
	if err != nil {
		t.Fatalf("print html: %v", err)
	}

	var visible []string
	visible = append(visible, p.Name, p.Title)
	visible = append(visible, p.Contact...)
	for _, section := range p.Sections {
		visible = append(visible, section.Heading)
		if section.Paragraph != "" {
			visible = append(visible, section.Paragraph)
		}
		for _, item := range section.Items {
			visible = append(visible, item.Heading, item.Subheading, item.DateRange)
			visible = append(visible, item.Lines...)
		}
		visible = append(visible, section.Tags...)
	}

	for _, text := range visible {
		if text == "" {
			continue
		}
		if !strings.Contains(out, html.EscapeString(text)) {
			t.Fatalf("print shell lost text %q", text)
		}
	}
}

func TestPrintHTMLRendersPresentForCurrentRole(t *testing.T) {
	doc := model.SeedDocument()
	out, err := render.PrintHTML(render.Project(doc))
	if err != nil {
		t.Fatalf("print html: %v", err)
	}
	if !strings.Contains(out, "Jan 2022 - Present") {
		t.Fatalf("expected current role date range in output")
	}
}
