package model

import "github.com/google/uuid"

// SeedDocument returns the starter document a new editing session mounts with.
// Entry ids are freshly generated so two seeded documents never share ids.
func SeedDocument() Document {
	return Document{
		PersonalInfo: PersonalInfo{
			Name:     "John Doe",
			Email:    "john.doe@example.com",
			Phone:    "(555) 123-4567",
			Location: "New York, NY",
			Title:    "Software Engineer",
		},
		Summary: "Experienced software engineer with a passion for building scalable web applications and solving complex problems. 5+ years of experience in full-stack development with expertise in React, Node.js, and cloud technologies.",
		Experience: []Entry{
			{
				ID:           uuid.NewString(),
				Organization: "Tech Solutions Inc.",
				Role:         "Senior Software Engineer",
				Location:     "New York, NY",
				StartDate:    "2022-01",
				EndDate:      "",
				Current:      true,
				Description:  "• Led development of a new customer portal that improved user engagement by 40%\n• Mentored junior developers and conducted code reviews\n• Implemented CI/CD pipeline reducing deployment time by 60%",
			},
			{
				ID:           uuid.NewString(),
				Organization: "Digital Innovations Co.",
				Role:         "Software Developer",
				Location:     "Boston, MA",
				StartDate:    "2020-03",
				EndDate:      "2021-12",
				Current:      false,
				Description:  "• Developed and maintained RESTful APIs using Node.js and Express\n• Collaborated with UX designers to implement responsive web interfaces\n• Participated in agile development process with 2-week sprints",
			},
		},
		Education: []Entry{
			{
				ID:           uuid.NewString(),
				Organization: "University of Technology",
				Role:         "Bachelor of Science",
				Field:        "Computer Science",
				StartDate:    "2016-09",
				EndDate:      "2020-05",
				Current:      false,
				Description:  "• GPA: 3.8/4.0\n• Relevant coursework: Data Structures, Algorithms, Web Development, Database Systems\n• Senior project: Developed a machine learning model for predictive analysis",
			},
		},
		Skills: []string{"JavaScript", "TypeScript", "React", "Node.js", "Express", "MongoDB", "AWS", "Docker", "Git", "CI/CD", "Agile Methodologies"},
	}
}
