// Package suggest is the gateway between the resume editor and the external
// text-generation service: it formats prompt templates, sends them through an
// llm.Client, and parses the structured responses into typed results. It never
// mutates a resume document; applying a suggestion is the caller's decision.
package suggest

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"resumeforge/internal/llm"
	"resumeforge/internal/shared/metrics"
	"resumeforge/internal/shared/telemetry"
)

// Gateway wraps the provider client. A nil Client means no credential is
// configured and every operation fails with ErrServiceUnavailable.
type Gateway struct {
	Client llm.Client
}

// NewGateway constructs a Gateway. client may be nil.
func NewGateway(client llm.Client) *Gateway {
	return &Gateway{Client: client}
}

// GenerateContent produces ordered candidate strings for the named section.
func (g *Gateway) GenerateContent(ctx context.Context, section SectionKind, userContext string) (ContentSuggestion, error) {
	if !section.Valid() {
		return ContentSuggestion{}, ValidationError{Field: "section", Reason: "unknown section kind"}
	}
	if strings.TrimSpace(userContext) == "" {
		return ContentSuggestion{}, ValidationError{Field: "context", Reason: "context is required"}
	}

	raw, err := g.complete(ctx, llm.Request{
		Messages: []llm.Message{
			llm.System(writerSystemPrompt),
			llm.User(contentPrompt(section, userContext)),
		},
		Temperature: 0.7,
		MaxTokens:   1000,
		JSONOutput:  true,
	})
	if err != nil {
		return ContentSuggestion{}, err
	}

	fields, err := requireKeys(raw, "suggestions")
	if err != nil {
		return ContentSuggestion{}, err
	}
	var candidates []string
	if err := json.Unmarshal(fields["suggestions"], &candidates); err != nil {
		return ContentSuggestion{}, ParseError{Reason: "suggestions is not a string array", Err: err}
	}
	return ContentSuggestion{Section: section, Candidates: candidates}, nil
}

// AnalyzeMatch scores the resume against a job description. The upstream
// score is validated to lie in [0, 100]; out-of-range values are clamped and
// logged, never displayed as-is.
func (g *Gateway) AnalyzeMatch(ctx context.Context, resumeText, jobDescription string) (MatchAnalysis, error) {
	if strings.TrimSpace(resumeText) == "" {
		return MatchAnalysis{}, ValidationError{Field: "resumeText", Reason: "resume text is required"}
	}
	if strings.TrimSpace(jobDescription) == "" {
		return MatchAnalysis{}, ValidationError{Field: "jobDescription", Reason: "job description is required"}
	}

	raw, err := g.complete(ctx, llm.Request{
		Messages: []llm.Message{
			llm.System(analyzerSystemPrompt),
			llm.User(analyzePrompt(resumeText, jobDescription)),
		},
		Temperature: 0.5,
		JSONOutput:  true,
	})
	if err != nil {
		return MatchAnalysis{}, err
	}

	fields, err := requireKeys(raw, "matchScore", "missingKeywords", "strengths", "weaknesses", "suggestions")
	if err != nil {
		return MatchAnalysis{}, err
	}

	var score float64
	if err := json.Unmarshal(fields["matchScore"], &score); err != nil {
		return MatchAnalysis{}, ParseError{Reason: "matchScore is not a number", Err: err}
	}

	analysis := MatchAnalysis{MatchScore: clampScore(score)}
	if score < 0 || score > 100 {
		telemetry.Warn("suggest.match_score_clamped", map[string]any{
			"upstream": score,
			"clamped":  analysis.MatchScore,
		})
	}

	for key, dst := range map[string]*[]string{
		"missingKeywords": &analysis.MissingKeywords,
		"strengths":       &analysis.Strengths,
		"weaknesses":      &analysis.Weaknesses,
		"suggestions":     &analysis.Suggestions,
	} {
		if err := json.Unmarshal(fields[key], dst); err != nil {
			return MatchAnalysis{}, ParseError{Reason: key + " is not a string array", Err: err}
		}
	}
	return analysis, nil
}

// GenerateBulletPoints turns a role description into candidate resume
// bullets. Empty responsibilities fail fast before any network call.
func (g *Gateway) GenerateBulletPoints(ctx context.Context, role, company, responsibilities string) ([]string, error) {
	if strings.TrimSpace(responsibilities) == "" {
		return nil, ValidationError{Field: "responsibilities", Reason: "responsibilities are required"}
	}

	raw, err := g.complete(ctx, llm.Request{
		Messages: []llm.Message{
			llm.System(bulletsSystemPrompt),
			llm.User(bulletsPrompt(role, company, responsibilities)),
		},
		Temperature: 0.7,
		JSONOutput:  true,
	})
	if err != nil {
		return nil, err
	}

	fields, err := requireKeys(raw, "bulletPoints")
	if err != nil {
		return nil, err
	}
	var bullets []string
	if err := json.Unmarshal(fields["bulletPoints"], &bullets); err != nil {
		return nil, ParseError{Reason: "bulletPoints is not a string array", Err: err}
	}
	return bullets, nil
}

func (g *Gateway) complete(ctx context.Context, req llm.Request) (string, error) {
	if g == nil || g.Client == nil {
		return "", ErrServiceUnavailable
	}

	metrics.IncSuggestStarted()
	start := time.Now()
	out, err := g.Client.Complete(ctx, req)
	metrics.ObserveSuggestDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncSuggestFailed()
		return "", UpstreamError{Err: err}
	}
	metrics.IncSuggestCompleted()
	return out, nil
}

// requireKeys decodes a JSON object and verifies every named key is present.
func requireKeys(raw string, keys ...string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, ParseError{Reason: "response is not a JSON object", Err: err}
	}
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			return nil, ParseError{Reason: "missing key " + key}
		}
	}
	return fields, nil
}

func clampScore(score float64) int {
	clamped := math.Round(score)
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}
	return int(clamped)
}
