package suggest

import (
	"context"
	"errors"
	"testing"

	"resumeforge/internal/llm"
)

// stubClient returns a canned response and records how many calls reached it.
type stubClient struct {
	response string
	err      error
	calls    int
	lastReq  llm.Request
}

func (c *stubClient) Complete(_ context.Context, req llm.Request) (string, error) {
	c.calls++
	c.lastReq = req
	return c.response, c.err
}

func TestGenerateContent(t *testing.T) {
	client := &stubClient{response: `{"suggestions":["Led a team of five.","Shipped the v2 API."]}`}
	gw := NewGateway(client)

	got, err := gw.GenerateContent(context.Background(), SectionSummary, "Backend engineer, 5 years")
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if got.Section != SectionSummary {
		t.Fatalf("section = %q", got.Section)
	}
	if len(got.Candidates) != 2 || got.Candidates[0] != "Led a team of five." {
		t.Fatalf("candidates = %v", got.Candidates)
	}
	if !client.lastReq.JSONOutput {
		t.Fatal("request did not ask for JSON output")
	}
	if client.lastReq.Temperature != 0.7 {
		t.Fatalf("temperature = %v", client.lastReq.Temperature)
	}
}

func TestGenerateContentValidation(t *testing.T) {
	client := &stubClient{response: `{"suggestions":[]}`}
	gw := NewGateway(client)

	var verr ValidationError
	if _, err := gw.GenerateContent(context.Background(), SectionKind("hobbies"), "ctx"); !errors.As(err, &verr) {
		t.Fatalf("unknown section: %v", err)
	}
	if _, err := gw.GenerateContent(context.Background(), SectionSummary, "   "); !errors.As(err, &verr) {
		t.Fatalf("blank context: %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("validation failures reached the client %d times", client.calls)
	}
}

func TestAnalyzeMatchClampsScore(t *testing.T) {
	cases := []struct {
		name     string
		upstream string
		want     int
	}{
		{"above range", "150", 100},
		{"below range", "-3", 0},
		{"fractional", "78.4", 78},
		{"in range", "85", 85},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &stubClient{response: `{"matchScore":` + tc.upstream + `,"missingKeywords":["Docker"],"strengths":["Go"],"weaknesses":["No cloud"],"suggestions":["Add metrics"]}`}
			gw := NewGateway(client)

			got, err := gw.AnalyzeMatch(context.Background(), "resume text", "job description")
			if err != nil {
				t.Fatalf("AnalyzeMatch: %v", err)
			}
			if got.MatchScore != tc.want {
				t.Fatalf("score = %d, want %d", got.MatchScore, tc.want)
			}
		})
	}
}

func TestAnalyzeMatchMissingKeyIsParseError(t *testing.T) {
	// weaknesses is absent; the result must not default it silently.
	client := &stubClient{response: `{"matchScore":70,"missingKeywords":[],"strengths":[],"suggestions":[]}`}
	gw := NewGateway(client)

	_, err := gw.AnalyzeMatch(context.Background(), "resume text", "job description")
	var perr ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}

func TestAnalyzeMatchMalformedResponse(t *testing.T) {
	client := &stubClient{response: `not json at all`}
	gw := NewGateway(client)

	var perr ParseError
	if _, err := gw.AnalyzeMatch(context.Background(), "resume", "job"); !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}

func TestGenerateBulletPointsFailsFastOnEmptyInput(t *testing.T) {
	client := &stubClient{response: `{"bulletPoints":["x"]}`}
	gw := NewGateway(client)

	var verr ValidationError
	if _, err := gw.GenerateBulletPoints(context.Background(), "Engineer", "Acme", "  "); !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if client.calls != 0 {
		t.Fatalf("empty responsibilities reached the client %d times", client.calls)
	}

	got, err := gw.GenerateBulletPoints(context.Background(), "Engineer", "Acme", "owned deploy tooling")
	if err != nil {
		t.Fatalf("GenerateBulletPoints: %v", err)
	}
	if len(got) != 1 || got[0] != "x" {
		t.Fatalf("bullets = %v", got)
	}
}

func TestNilClientIsServiceUnavailable(t *testing.T) {
	gw := NewGateway(nil)

	if _, err := gw.GenerateContent(context.Background(), SectionSummary, "ctx"); !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("content: %v", err)
	}
	if _, err := gw.AnalyzeMatch(context.Background(), "resume", "job"); !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("analyze: %v", err)
	}
	if _, err := gw.GenerateBulletPoints(context.Background(), "r", "c", "resp"); !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("bullets: %v", err)
	}
}

func TestUpstreamFailureWraps(t *testing.T) {
	cause := errors.New("connection refused")
	gw := NewGateway(&stubClient{err: cause})

	_, err := gw.AnalyzeMatch(context.Background(), "resume", "job")
	var uerr UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause not preserved through Unwrap")
	}
}
