package extract

import (
	"errors"
	"testing"
)

func TestTextRejectsUnsupportedType(t *testing.T) {
	_, err := Text([]byte("plain text"), "text/plain", "resume.txt")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestNormalizeMimeType(t *testing.T) {
	cases := []struct {
		mime, name, want string
	}{
		{"application/pdf", "resume.pdf", mimePDF},
		{"application/pdf; charset=binary", "resume.pdf", mimePDF},
		{"application/octet-stream", "resume.pdf", mimePDF},
		{"application/zip", "resume.docx", mimeDOCX},
		{mimeDOCX, "resume.docx", mimeDOCX},
		{"text/plain", "resume.txt", "text/plain"},
	}
	for _, tc := range cases {
		if got := normalizeMimeType(tc.mime, tc.name); got != tc.want {
			t.Fatalf("normalizeMimeType(%q, %q) = %q, want %q", tc.mime, tc.name, got, tc.want)
		}
	}
}

func TestFlattenDocxXML(t *testing.T) {
	raw := `<w:body><w:p><w:r><w:t>John Doe</w:t></w:r></w:p><w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p></w:body>`
	got := flattenDocxXML(raw)
	want := "John Doe\nSoftware Engineer"
	if got != want {
		t.Fatalf("flattenDocxXML = %q, want %q", got, want)
	}
}
