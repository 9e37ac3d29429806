package editor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"resumeforge/internal/llm"
	"resumeforge/internal/resumes"
	"resumeforge/internal/suggest"
	"resumeforge/internal/users"
	"resumeforge/resume/edit"
	"resumeforge/resume/model"
)

var testUser = users.User{ID: "u-1", Email: "jane@example.com", FullName: "Jane Doe"}

// gateClient hands out one gate per Complete call so tests can control the
// order responses arrive in. started is signalled on entry to Complete.
type gateClient struct {
	mu      sync.Mutex
	next    int
	gates   []chan string
	started chan struct{}
}

func newGateClient(calls int) *gateClient {
	c := &gateClient{started: make(chan struct{}, calls)}
	for i := 0; i < calls; i++ {
		c.gates = append(c.gates, make(chan string, 1))
	}
	return c
}

func (c *gateClient) Complete(ctx context.Context, _ llm.Request) (string, error) {
	c.mu.Lock()
	gate := c.gates[c.next]
	c.next++
	c.mu.Unlock()
	c.started <- struct{}{}
	select {
	case out := <-gate:
		return out, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestSessionApplyRefreshesPreview(t *testing.T) {
	s := NewSession(testUser, model.SeedDocument())

	doc, preview, err := s.Apply(Op{Kind: OpUpdateField, Path: edit.FieldName, Value: "Jane Doe"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if doc.PersonalInfo.Name != "Jane Doe" {
		t.Fatalf("document name = %q", doc.PersonalInfo.Name)
	}
	if preview.Name != "Jane Doe" {
		t.Fatalf("preview name = %q, preview did not track the edit", preview.Name)
	}
	if got := s.Preview().Name; got != "Jane Doe" {
		t.Fatalf("session preview name = %q", got)
	}
}

func TestSessionConcurrentMovesKeepEntrySet(t *testing.T) {
	doc := model.SeedDocument()
	s := NewSession(testUser, doc)

	want := map[string]bool{}
	for _, e := range doc.Experience {
		want[e.ID] = true
	}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Apply(Op{Kind: OpMoveEntry, Section: model.SectionExperience, Index: 1, Direction: edit.MoveUp})
		}()
	}
	wg.Wait()

	got := s.Document().Experience
	if len(got) != len(want) {
		t.Fatalf("entry count changed: %d != %d", len(got), len(want))
	}
	for _, e := range got {
		if !want[e.ID] {
			t.Fatalf("unexpected entry id %q after concurrent moves", e.ID)
		}
	}
}

func TestSessionStaleContentResultDiscarded(t *testing.T) {
	client := newGateClient(2)
	gw := suggest.NewGateway(client)
	s := NewSession(testUser, model.SeedDocument())

	type outcome struct {
		result suggest.ContentSuggestion
		kept   bool
		err    error
	}

	first := make(chan outcome, 1)
	go func() {
		r, kept, err := s.RequestContent(context.Background(), gw, suggest.SectionSummary, "early request")
		first <- outcome{r, kept, err}
	}()
	<-client.started

	second := make(chan outcome, 1)
	go func() {
		r, kept, err := s.RequestContent(context.Background(), gw, suggest.SectionSummary, "later request")
		second <- outcome{r, kept, err}
	}()
	<-client.started

	// The newer request finishes first and wins.
	client.gates[1] <- `{"suggestions":["second"]}`
	got2 := <-second
	if got2.err != nil || !got2.kept {
		t.Fatalf("newest request: kept=%v err=%v", got2.kept, got2.err)
	}

	// The older response arrives afterwards and must be dropped.
	client.gates[0] <- `{"suggestions":["first"]}`
	got1 := <-first
	if got1.err == nil && got1.kept {
		t.Fatalf("stale request was kept: %+v", got1.result)
	}

	last, ok := s.LastContent()
	if !ok {
		t.Fatal("no content recorded")
	}
	if len(last.Candidates) != 1 || last.Candidates[0] != "second" {
		t.Fatalf("stale result overwrote the newer one: %v", last.Candidates)
	}
}

func TestSessionCloseDiscardsInFlight(t *testing.T) {
	client := newGateClient(1)
	gw := suggest.NewGateway(client)
	s := NewSession(testUser, model.SeedDocument())

	done := make(chan bool, 1)
	go func() {
		_, kept, _ := s.RequestContent(context.Background(), gw, suggest.SectionSummary, "in flight")
		done <- kept
	}()
	<-client.started

	s.Close()
	client.gates[0] <- `{"suggestions":["too late"]}`

	if kept := <-done; kept {
		t.Fatal("result kept after Close")
	}
	if _, ok := s.LastContent(); ok {
		t.Fatal("closed session recorded a suggestion")
	}
	if _, _, err := s.Apply(Op{Kind: OpUpdateField, Path: edit.FieldName, Value: "x"}); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("Apply after Close: %v", err)
	}
	if _, _, err := s.RequestContent(context.Background(), gw, suggest.SectionSummary, "again"); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("RequestContent after Close: %v", err)
	}
}

func TestSessionApplySuggestion(t *testing.T) {
	s := NewSession(testUser, model.SeedDocument())

	doc, _, err := s.ApplySuggestion(suggest.SectionSummary, "", "A sharper summary.")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if doc.Summary != "A sharper summary." {
		t.Fatalf("summary = %q", doc.Summary)
	}

	doc, _, err = s.ApplySuggestion(suggest.SectionSkills, "", "Go, Postgres, Kubernetes")
	if err != nil {
		t.Fatalf("skills: %v", err)
	}
	if len(doc.Skills) != 3 || doc.Skills[0] != "Go" {
		t.Fatalf("skills = %v", doc.Skills)
	}

	entryID := doc.Experience[0].ID
	doc, _, err = s.ApplySuggestion(suggest.SectionExperience, entryID, "Rewrote the billing pipeline.")
	if err != nil {
		t.Fatalf("experience: %v", err)
	}
	if doc.Experience[0].Description != "Rewrote the billing pipeline." {
		t.Fatalf("description = %q", doc.Experience[0].Description)
	}

	if _, _, err := s.ApplySuggestion(suggest.SectionKind("nope"), "", "text"); err == nil {
		t.Fatal("unknown section kind accepted")
	}
}

func TestManagerMountsAndPersists(t *testing.T) {
	svc := resumes.NewService(resumes.NewSeededMemoryRepo())
	mgr := NewManager(svc)
	ctx := context.Background()

	stored, err := svc.List(ctx, testUser.ID)
	if err != nil || len(stored) == 0 {
		t.Fatalf("seed list: %v (%d)", err, len(stored))
	}
	id := stored[0].ID

	doc, _, err := mgr.Apply(ctx, testUser, id, Op{Kind: OpUpdateField, Path: edit.FieldName, Value: "Persisted Name"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if doc.PersonalInfo.Name != "Persisted Name" {
		t.Fatalf("name = %q", doc.PersonalInfo.Name)
	}

	reloaded, err := svc.Get(ctx, testUser.ID, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if reloaded.Document.PersonalInfo.Name != "Persisted Name" {
		t.Fatalf("edit not persisted, name = %q", reloaded.Document.PersonalInfo.Name)
	}

	mgr.Close(testUser, id)
	if _, err := mgr.Session(ctx, testUser, id); err != nil {
		t.Fatalf("remount after Close: %v", err)
	}
}

func TestManagerUnknownResume(t *testing.T) {
	svc := resumes.NewService(resumes.NewMemoryRepo())
	mgr := NewManager(svc)

	_, err := mgr.Session(context.Background(), testUser, "missing")
	if !errors.Is(err, resumes.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
