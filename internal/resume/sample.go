package resume

import "github.com/jonathan/resume-builder/internal/types"

// SampleDocument returns the demo resume offered to new visitors.
func SampleDocument() types.ResumeDocument {
	return types.ResumeDocument{
		Name:         "John Doe",
		Email:        "john.doe@example.com",
		Phone:        "+1 (555) 123-4567",
		Location:     "New York, NY",
		LinkedIn:     "linkedin.com/in/johndoe",
		Summary:      "Experienced professional with expertise in software development and project management.",
		Degree:       "Bachelor of Science in Computer Science",
		Institution:  "University of Technology",
		Year:         "2020",
		CGPA:         "3.8",
		Skills:       []string{"JavaScript", "React", "Node.js", "Project Management"},
		ExpTitle:     "Software Engineer",
		ExpOrg:       "Tech Solutions Inc.",
		ExpDuration:  "Jan 2021 - Present",
		ExpDesc:      "Developed and maintained web applications using modern technologies.",
		Achievements: "Certified AWS Developer, Led team of 5 developers on major project",
	}
}
