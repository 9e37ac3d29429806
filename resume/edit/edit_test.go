package edit_test

import (
	"errors"
	"reflect"
	"testing"

	"resumeforge/resume/edit"
	"resumeforge/resume/model"
)

func TestInsertRemoveKeepsCountsAndUniqueIDs(t *testing.T) {
	doc := model.Document{}
	seen := map[string]bool{}

	var err error
	var id string
	inserted := 0
	for i := 0; i < 10; i++ {
		doc, id, err = edit.InsertEntry(doc, model.SectionExperience)
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if seen[id] {
			t.Fatalf("duplicate entry id %s", id)
		}
		seen[id] = true
		inserted++
	}

	removed := 0
	for _, entry := range doc.Experience[:4] {
		doc, err = edit.RemoveEntry(doc, model.SectionExperience, entry.ID)
		if err != nil {
			t.Fatalf("remove %s: %v", entry.ID, err)
		}
		removed++
	}

	if got := len(doc.Experience); got != inserted-removed {
		t.Fatalf("expected %d entries, got %d", inserted-removed, got)
	}
	ids := map[string]bool{}
	for _, entry := range doc.Experience {
		if ids[entry.ID] {
			t.Fatalf("duplicate id after removals: %s", entry.ID)
		}
		ids[entry.ID] = true
	}
}

func TestUpdateEntryNotFound(t *testing.T) {
	doc := model.SeedDocument()
	_, err := edit.UpdateEntry(doc, model.SectionExperience, "missing", edit.EntryRole, "CTO")
	var nf edit.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != "missing" {
		t.Fatalf("expected id in error, got %q", nf.ID)
	}

	if _, err := edit.RemoveEntry(doc, model.SectionEducation, "missing"); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError from remove, got %v", err)
	}
}

func TestUpdateEntryDoesNotMutateOldSnapshot(t *testing.T) {
	doc := model.SeedDocument()
	before := doc.Experience[0].Role

	updated, err := edit.UpdateEntry(doc, model.SectionExperience, doc.Experience[0].ID, edit.EntryRole, "Staff Engineer")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if doc.Experience[0].Role != before {
		t.Fatalf("old snapshot mutated: %q", doc.Experience[0].Role)
	}
	if updated.Experience[0].Role != "Staff Engineer" {
		t.Fatalf("new snapshot missing update: %q", updated.Experience[0].Role)
	}
}

func TestMoveEntryBoundariesAreNoOps(t *testing.T) {
	doc := model.SeedDocument()
	order := entryIDs(doc.Experience)

	moved, err := edit.MoveEntry(doc, model.SectionExperience, 0, edit.MoveUp)
	if err != nil {
		t.Fatalf("move first up: %v", err)
	}
	if !reflect.DeepEqual(entryIDs(moved.Experience), order) {
		t.Fatalf("moving first entry up changed order")
	}

	last := len(doc.Experience) - 1
	moved, err = edit.MoveEntry(doc, model.SectionExperience, last, edit.MoveDown)
	if err != nil {
		t.Fatalf("move last down: %v", err)
	}
	if !reflect.DeepEqual(entryIDs(moved.Experience), order) {
		t.Fatalf("moving last entry down changed order")
	}

	// Stale index from a double-click: clamp, don't corrupt.
	moved, err = edit.MoveEntry(doc, model.SectionExperience, last+3, edit.MoveDown)
	if err != nil {
		t.Fatalf("move stale index: %v", err)
	}
	if !reflect.DeepEqual(entryIDs(moved.Experience), order) {
		t.Fatalf("stale index changed order")
	}
}

func TestMoveEntrySwapsNeighbors(t *testing.T) {
	doc := model.SeedDocument()
	first, second := doc.Experience[0].ID, doc.Experience[1].ID

	moved, err := edit.MoveEntry(doc, model.SectionExperience, 1, edit.MoveUp)
	if err != nil {
		t.Fatalf("move up: %v", err)
	}
	if moved.Experience[0].ID != second || moved.Experience[1].ID != first {
		t.Fatalf("expected swap, got %v", entryIDs(moved.Experience))
	}
}

func TestSetSkillsTrimsAndFiltersEmpties(t *testing.T) {
	doc := edit.SetSkills(model.Document{}, "React, Node.js,  AWS ")
	want := []string{"React", "Node.js", "AWS"}
	if !reflect.DeepEqual(doc.Skills, want) {
		t.Fatalf("expected %v, got %v", want, doc.Skills)
	}

	doc = edit.SetSkills(doc, "React,")
	if !reflect.DeepEqual(doc.Skills, []string{"React"}) {
		t.Fatalf("trailing comma should not keep an empty skill, got %v", doc.Skills)
	}
}

func TestSetCurrentKeepsEndDate(t *testing.T) {
	doc := model.SeedDocument()
	id := doc.Experience[1].ID
	end := doc.Experience[1].EndDate

	updated, err := edit.SetCurrent(doc, model.SectionExperience, id, true)
	if err != nil {
		t.Fatalf("set current: %v", err)
	}
	if !updated.Experience[1].Current {
		t.Fatalf("expected current=true")
	}
	if updated.Experience[1].EndDate != end {
		t.Fatalf("end date must not be cleared, got %q", updated.Experience[1].EndDate)
	}
}

func TestUpdateFieldUnknownPath(t *testing.T) {
	var unknown edit.UnknownFieldError
	if _, err := edit.UpdateField(model.Document{}, "personalInfo.nickname", "x"); !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownFieldError, got %v", err)
	}
}

func entryIDs(entries []model.Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
