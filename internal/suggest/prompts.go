package suggest

import "fmt"

const (
	writerSystemPrompt   = "You are an expert resume writer with knowledge of ATS optimization."
	analyzerSystemPrompt = "You are an expert resume analyzer that helps match resumes to job descriptions."
	bulletsSystemPrompt  = "You are an expert resume writer who creates impactful bullet points for job experiences."
)

var sectionInstructions = map[SectionKind]string{
	SectionSummary:    "Write 3 alternative professional summary paragraphs for my resume. Each should be 2-4 sentences, confident, and ATS-friendly.",
	SectionExperience: "Write 3 alternative sets of achievement-oriented bullet points for my work experience section. Separate bullets within a set with newlines.",
	SectionSkills:     "Write 3 alternative comma-separated skills lists for my resume, ordered from most to least relevant.",
}

func contentPrompt(section SectionKind, userContext string) string {
	return fmt.Sprintf(`%s

Context about my experience: %s

Format your response as JSON with the following structure:
{
  "suggestions": string[]
}`, sectionInstructions[section], userContext)
}

func analyzePrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Analyze how well this resume matches the job description. Provide a match score percentage, identify missing keywords, list strengths and weaknesses, and suggest improvements.

Resume:
%s

Job Description:
%s

Format your response as JSON with the following structure:
{
  "matchScore": number,
  "missingKeywords": string[],
  "strengths": string[],
  "weaknesses": string[],
  "suggestions": string[]
}`, resumeText, jobDescription)
}

func bulletsPrompt(role, company, responsibilities string) string {
	return fmt.Sprintf(`Create 3-5 impactful bullet points for my resume based on this job:

Job Title: %s
Company: %s
Responsibilities: %s

Make the bullet points specific, achievement-oriented, and quantifiable where possible. Format your response as JSON with a "bulletPoints" array of strings.`, role, company, responsibilities)
}
