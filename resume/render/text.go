package render

import (
	"strings"
)

// PlainText flattens the preview into the plain-text form handed to the
// analysis gateway. It carries the same visible content as the HTML paths.
func PlainText(p Preview) string {
	var b strings.Builder
	writeLine(&b, p.Name)
	writeLine(&b, p.Title)
	if len(p.Contact) > 0 {
		writeLine(&b, strings.Join(p.Contact, " | "))
	}
	for _, section := range p.Sections {
		b.WriteString("\n")
		writeLine(&b, strings.ToUpper(section.Heading))
		if section.Paragraph != "" {
			writeLine(&b, section.Paragraph)
		}
		for _, item := range section.Items {
			head := item.Heading
			if item.DateRange != "" {
				head = head + " (" + item.DateRange + ")"
			}
			writeLine(&b, head)
			writeLine(&b, item.Subheading)
			for _, line := range item.Lines {
				writeLine(&b, line)
			}
		}
		if len(section.Tags) > 0 {
			writeLine(&b, strings.Join(section.Tags, ", "))
		}
	}
	return b.String()
}

func writeLine(b *strings.Builder, text string) {
	if text == "" {
		return
	}
	b.WriteString(text)
	b.WriteString("\n")
}
