package editor

import (
	"context"

	"resumeforge/internal/suggest"
)

// RequestContent runs a content-generation call correlated to this session.
// The returned bool reports whether the result was kept: false means a newer
// request superseded this one (or the session closed) and the result was
// discarded.
func (s *Session) RequestContent(ctx context.Context, gw *suggest.Gateway, section suggest.SectionKind, userContext string) (suggest.ContentSuggestion, bool, error) {
	reqCtx, token, err := s.begin(ctx, SiteContent)
	if err != nil {
		return suggest.ContentSuggestion{}, false, err
	}
	result, err := gw.GenerateContent(reqCtx, section, userContext)
	if err != nil {
		return suggest.ContentSuggestion{}, false, err
	}
	kept := s.commit(SiteContent, token, func() {
		s.content = &result
	})
	return result, kept, nil
}

// RequestAnalysis runs a job-match analysis correlated to this session.
func (s *Session) RequestAnalysis(ctx context.Context, gw *suggest.Gateway, resumeText, jobDescription string) (suggest.MatchAnalysis, bool, error) {
	reqCtx, token, err := s.begin(ctx, SiteAnalysis)
	if err != nil {
		return suggest.MatchAnalysis{}, false, err
	}
	result, err := gw.AnalyzeMatch(reqCtx, resumeText, jobDescription)
	if err != nil {
		return suggest.MatchAnalysis{}, false, err
	}
	kept := s.commit(SiteAnalysis, token, func() {
		s.analysis = &result
	})
	return result, kept, nil
}

// RequestBulletPoints runs a bullet-point generation call correlated to this
// session.
func (s *Session) RequestBulletPoints(ctx context.Context, gw *suggest.Gateway, role, company, responsibilities string) ([]string, bool, error) {
	reqCtx, token, err := s.begin(ctx, SiteBullets)
	if err != nil {
		return nil, false, err
	}
	result, err := gw.GenerateBulletPoints(reqCtx, role, company, responsibilities)
	if err != nil {
		return nil, false, err
	}
	kept := s.commit(SiteBullets, token, func() {
		s.bullets = result
	})
	return result, kept, nil
}

// LastContent returns the most recent kept content suggestion, if any.
func (s *Session) LastContent() (suggest.ContentSuggestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.content == nil {
		return suggest.ContentSuggestion{}, false
	}
	return *s.content, true
}

// LastAnalysis returns the most recent kept match analysis, if any.
func (s *Session) LastAnalysis() (suggest.MatchAnalysis, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil {
		return suggest.MatchAnalysis{}, false
	}
	return *s.analysis, true
}

// LastBulletPoints returns the most recent kept bullet points, if any.
func (s *Session) LastBulletPoints() ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bullets == nil {
		return nil, false
	}
	return append([]string(nil), s.bullets...), true
}
