// Package editor is the section-editor layer: it translates user edit intents
// into document-model operations, keeps the preview in sync after every
// mutation, and correlates in-flight suggestion requests so a stale response
// can never overwrite a newer one.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"resumeforge/internal/suggest"
	"resumeforge/internal/users"
	"resumeforge/resume/edit"
	"resumeforge/resume/model"
	"resumeforge/resume/render"
)

// ErrSessionClosed is returned by operations on a closed session.
var ErrSessionClosed = errors.New("editor session closed")

// CallSite identifies one gateway call site in the editor; request
// correlation is tracked per site.
type CallSite string

const (
	SiteContent  CallSite = "content"
	SiteAnalysis CallSite = "analysis"
	SiteBullets  CallSite = "bullets"
)

// UIState is purely presentational editor state. It never influences the
// document or the preview.
type UIState struct {
	ActiveTab  string          `json:"activeTab"`
	OpenPanels map[string]bool `json:"openPanels"`
}

type siteState struct {
	gen    uint64
	cancel context.CancelFunc
}

// Session owns one document for the duration of an editing session. All
// mutations are serialized through its lock, so two reorder clicks can never
// interleave and corrupt list order.
type Session struct {
	mu      sync.Mutex
	user    users.User
	doc     model.Document
	preview render.Preview
	ui      UIState
	sites   map[CallSite]*siteState
	closed  bool

	content  *suggest.ContentSuggestion
	analysis *suggest.MatchAnalysis
	bullets  []string
}

// NewSession mounts an editing session over a document. The user identity is
// passed in explicitly; the session never consults ambient state.
func NewSession(user users.User, doc model.Document) *Session {
	return &Session{
		user:    user,
		doc:     doc,
		preview: render.Project(doc),
		ui:      UIState{ActiveTab: "personal", OpenPanels: map[string]bool{}},
		sites:   map[CallSite]*siteState{},
	}
}

// User returns the session's owner identity.
func (s *Session) User() users.User {
	return s.user
}

// Document returns the current document snapshot.
func (s *Session) Document() model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Preview returns the projection of the current document. It is recomputed
// synchronously inside Apply, so it always matches Document.
func (s *Session) Preview() render.Preview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

// UI returns the presentational state.
func (s *Session) UI() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ui
}

// SetActiveTab records which editor tab is open.
func (s *Session) SetActiveTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.ActiveTab = tab
}

// TogglePanel flips an accordion panel open or closed.
func (s *Session) TogglePanel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.OpenPanels[id] = !s.ui.OpenPanels[id]
}

// Apply dispatches one edit op to the document model and re-projects the
// preview before returning. The returned document is the new snapshot.
func (s *Session) Apply(op Op) (model.Document, render.Preview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return model.Document{}, render.Preview{}, ErrSessionClosed
	}

	doc := s.doc
	var err error
	switch op.Kind {
	case OpUpdateField:
		doc, err = edit.UpdateField(doc, op.Path, op.Value)
	case OpInsertEntry:
		doc, _, err = edit.InsertEntry(doc, op.Section)
	case OpUpdateEntry:
		doc, err = edit.UpdateEntry(doc, op.Section, op.EntryID, op.Field, op.Value)
	case OpSetCurrent:
		doc, err = edit.SetCurrent(doc, op.Section, op.EntryID, op.Current)
	case OpRemoveEntry:
		doc, err = edit.RemoveEntry(doc, op.Section, op.EntryID)
	case OpMoveEntry:
		doc, err = edit.MoveEntry(doc, op.Section, op.Index, op.Direction)
	case OpSetSkills:
		doc = edit.SetSkills(doc, op.Skills)
	default:
		err = fmt.Errorf("unknown op kind %q", op.Kind)
	}
	if err != nil {
		return s.doc, s.preview, err
	}

	s.doc = doc
	s.preview = render.Project(doc)
	return s.doc, s.preview, nil
}

// ApplySuggestion merges an accepted suggestion into the document: summary
// and skills replace their section, experience replaces the description of
// the targeted entry.
func (s *Session) ApplySuggestion(kind suggest.SectionKind, entryID, text string) (model.Document, render.Preview, error) {
	switch kind {
	case suggest.SectionSummary:
		return s.Apply(Op{Kind: OpUpdateField, Path: edit.FieldSummary, Value: text})
	case suggest.SectionSkills:
		return s.Apply(Op{Kind: OpSetSkills, Skills: text})
	case suggest.SectionExperience:
		return s.Apply(Op{
			Kind:    OpUpdateEntry,
			Section: model.SectionExperience,
			EntryID: entryID,
			Field:   edit.EntryDescription,
			Value:   text,
		})
	default:
		return s.Document(), s.Preview(), suggest.ValidationError{Field: "section", Reason: "unknown section kind"}
	}
}

// begin registers a new in-flight request for the call site: the previous
// request's context is cancelled and the generation is bumped so its late
// result will be discarded.
func (s *Session) begin(ctx context.Context, site CallSite) (context.Context, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, 0, ErrSessionClosed
	}

	state := s.sites[site]
	if state == nil {
		state = &siteState{}
		s.sites[site] = state
	}
	if state.cancel != nil {
		state.cancel()
	}
	state.gen++
	reqCtx, cancel := context.WithCancel(ctx)
	state.cancel = cancel
	return reqCtx, state.gen, nil
}

// commit runs fn under the session lock only if token still identifies the
// newest request for the site. It reports whether the result was kept.
func (s *Session) commit(site CallSite, token uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	state := s.sites[site]
	if state == nil || state.gen != token {
		return false
	}
	state.cancel = nil
	fn()
	return true
}

// Close discards the session and any in-flight request results.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for _, state := range s.sites {
		if state.cancel != nil {
			state.cancel()
			state.cancel = nil
		}
	}
}
