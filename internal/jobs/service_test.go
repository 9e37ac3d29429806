package jobs

import (
	"context"
	"errors"
	"testing"
)

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	cases := []struct {
		name                        string
		title, company, description string
	}{
		{"missing title", "", "Acme", "desc"},
		{"missing company", "Engineer", "  ", "desc"},
		{"missing description", "Engineer", "Acme", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, "u-1", tc.title, tc.company, tc.description); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}

	job, err := svc.Create(ctx, "u-1", " Backend Engineer ", "Acme", "Build services.")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.Title != "Backend Engineer" {
		t.Fatalf("title not trimmed: %q", job.Title)
	}
	if job.ID == "" {
		t.Fatal("no id assigned")
	}
}

func TestServiceListSearchMatchesTitleAndCompany(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	svc.Create(ctx, "u-1", "Senior Frontend Developer", "Tech Innovations Inc.", "React work.")
	svc.Create(ctx, "u-1", "Full Stack Developer", "Growth Solutions", "SaaS platform.")

	all, err := svc.List(ctx, "u-1", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all = %d", len(all))
	}

	byTitle, _ := svc.List(ctx, "u-1", "frontend")
	if len(byTitle) != 1 || byTitle[0].Title != "Senior Frontend Developer" {
		t.Fatalf("byTitle = %v", byTitle)
	}

	byCompany, _ := svc.List(ctx, "u-1", "growth")
	if len(byCompany) != 1 || byCompany[0].Company != "Growth Solutions" {
		t.Fatalf("byCompany = %v", byCompany)
	}

	// The description is not searched.
	byDescription, _ := svc.List(ctx, "u-1", "saas")
	if len(byDescription) != 0 {
		t.Fatalf("byDescription = %v", byDescription)
	}
}

func TestSeededRepoPlantsSamplePostings(t *testing.T) {
	svc := NewService(NewSeededMemoryRepo())

	list, err := svc.List(context.Background(), "u-1", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("seeded list = %d", len(list))
	}
	if list[0].Title != "Senior Frontend Developer" || list[1].Title != "Full Stack Developer" {
		t.Fatalf("seed order: %q, %q", list[0].Title, list[1].Title)
	}
}

func TestServiceDeleteUnknownIsNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if err := svc.Delete(context.Background(), "u-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
