package render

import (
	"bytes"
	"html/template"
)

// printShell is the standalone document the preview is embedded into for
// printing: fixed A4 sizing, forced black-on-white so dark-theme colors never
// leak into paper output.
const printShell = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Resume - {{.Name}}</title>
    <style>
      @page {
        size: A4;
        margin: 0;
      }
      body {
        margin: 0;
        padding: 2rem;
        background: white;
        color: black;
        font-family: Georgia, "Times New Roman", serif;
      }
      h1 {
        font-size: 24pt;
        margin: 0 0 0.5rem;
        text-align: center;
      }
      .title {
        text-align: center;
        font-size: 14pt;
        color: #666;
        margin: 0 0 0.5rem;
      }
      .contact {
        text-align: center;
        font-size: 10pt;
        color: #666;
        margin-bottom: 1.5rem;
      }
      .contact span + span::before {
        content: " · ";
      }
      h2 {
        font-size: 14pt;
        margin: 1.5rem 0 0.75rem;
        border-bottom: 2px solid black;
        padding-bottom: 0.25rem;
      }
      .item {
        margin-bottom: 1rem;
      }
      .item-head {
        display: flex;
        justify-content: space-between;
        align-items: baseline;
      }
      .item-head h3 {
        font-size: 12pt;
        margin: 0;
      }
      .dates {
        font-size: 10pt;
        color: #666;
      }
      .sub {
        font-weight: 600;
        margin: 0.1rem 0;
      }
      .line {
        margin: 0.15rem 0;
        font-size: 11pt;
      }
      .tags span {
        display: inline-block;
        background-color: #f3f4f6;
        border-radius: 4px;
        padding: 0.15rem 0.6rem;
        margin: 0 0.3rem 0.3rem 0;
        font-size: 10pt;
      }
    </style>
  </head>
  <body>
    <h1>{{.Name}}</h1>
    {{- if .Title}}
    <p class="title">{{.Title}}</p>
    {{- end}}
    {{- if .Contact}}
    <div class="contact">{{range .Contact}}<span>{{.}}</span>{{end}}</div>
    {{- end}}
    {{- range .Sections}}
    <h2>{{.Heading}}</h2>
    {{- if .Paragraph}}
    <p class="line">{{.Paragraph}}</p>
    {{- end}}
    {{- range .Items}}
    <div class="item">
      <div class="item-head"><h3>{{.Heading}}</h3><span class="dates">{{.DateRange}}</span></div>
      {{- if .Subheading}}
      <p class="sub">{{.Subheading}}</p>
      {{- end}}
      {{- range .Lines}}
      <p class="line">{{.}}</p>
      {{- end}}
    </div>
    {{- end}}
    {{- if .Tags}}
    <div class="tags">{{range .Tags}}<span>{{.}}</span>{{end}}</div>
    {{- end}}
    {{- end}}
  </body>
</html>
`

var printTemplate = template.Must(template.New("print").Parse(printShell))

// PrintHTML serializes the preview into the standalone print shell.
func PrintHTML(p Preview) (string, error) {
	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}
