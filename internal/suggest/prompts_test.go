package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentPromptCarriesSectionInstruction(t *testing.T) {
	for section, instruction := range sectionInstructions {
		prompt := contentPrompt(section, "8 years building Go services")
		assert.Contains(t, prompt, instruction, "section %s", section)
		assert.Contains(t, prompt, "8 years building Go services")
		assert.Contains(t, prompt, `"suggestions": string[]`)
	}
}

func TestAnalyzePromptEmbedsBothTexts(t *testing.T) {
	prompt := analyzePrompt("RESUME BODY", "JOB BODY")

	require.Contains(t, prompt, "RESUME BODY")
	require.Contains(t, prompt, "JOB BODY")
	// The resume comes before the job description so the model anchors on it.
	assert.Less(t, strings.Index(prompt, "RESUME BODY"), strings.Index(prompt, "JOB BODY"))
	for _, key := range []string{"matchScore", "missingKeywords", "strengths", "weaknesses", "suggestions"} {
		assert.Contains(t, prompt, key)
	}
}

func TestBulletsPromptEmbedsJobFields(t *testing.T) {
	prompt := bulletsPrompt("Platform Engineer", "Acme", "ran the deploy pipeline")

	assert.Contains(t, prompt, "Job Title: Platform Engineer")
	assert.Contains(t, prompt, "Company: Acme")
	assert.Contains(t, prompt, "ran the deploy pipeline")
	assert.Contains(t, prompt, `"bulletPoints"`)
}

