package editor

import (
	"context"
	"sync"

	"resumeforge/internal/resumes"
	"resumeforge/internal/users"
	"resumeforge/resume/model"
	"resumeforge/resume/render"
)

// Manager tracks the live editing session per stored resume. A session is
// mounted lazily from the persisted document on first use and discarded on
// Close; each session is owned exclusively by one resume id.
type Manager struct {
	mu       sync.Mutex
	svc      *resumes.Service
	sessions map[string]*Session
}

func NewManager(svc *resumes.Service) *Manager {
	return &Manager{
		svc:      svc,
		sessions: make(map[string]*Session),
	}
}

// Session returns the live session for the resume, mounting one from storage
// if needed.
func (m *Manager) Session(ctx context.Context, user users.User, resumeID string) (*Session, error) {
	m.mu.Lock()
	if session, ok := m.sessions[sessionKey(user.ID, resumeID)]; ok {
		m.mu.Unlock()
		return session, nil
	}
	m.mu.Unlock()

	stored, err := m.svc.Get(ctx, user.ID, resumeID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionKey(user.ID, resumeID)
	if session, ok := m.sessions[key]; ok {
		return session, nil
	}
	session := NewSession(user, stored.Document)
	m.sessions[key] = session
	return session, nil
}

// Apply routes one edit op through the resume's session and persists the
// resulting document.
func (m *Manager) Apply(ctx context.Context, user users.User, resumeID string, op Op) (model.Document, render.Preview, error) {
	session, err := m.Session(ctx, user, resumeID)
	if err != nil {
		return model.Document{}, render.Preview{}, err
	}
	doc, preview, err := session.Apply(op)
	if err != nil {
		return doc, preview, err
	}
	if _, err := m.svc.SaveDocument(ctx, user.ID, resumeID, doc); err != nil {
		return doc, preview, err
	}
	return doc, preview, nil
}

// Close tears down the resume's session, discarding in-flight suggestion
// results. Navigating away from the editor lands here.
func (m *Manager) Close(user users.User, resumeID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionKey(user.ID, resumeID)
	if session, ok := m.sessions[key]; ok {
		session.Close()
		delete(m.sessions, key)
	}
}

func sessionKey(userID, resumeID string) string {
	return userID + "/" + resumeID
}
