package rendering

import (
	"slices"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultName is shown when the resume has no name.
const DefaultName = "Your Name"

// Preview is the display form of a resume document.
type Preview struct {
	Name         string
	Email        string
	Phone        string
	Location     string
	LinkedIn     string
	Summary      string
	Education    string
	Skills       []string
	Experience   Experience
	Achievements string
}

// Experience is the single work entry shown in the preview.
type Experience struct {
	Title       string
	Org         string
	Duration    string
	Description string
}

// IsZero reports whether no experience field is set.
func (e Experience) IsZero() bool {
	return e.Title == "" && e.Org == "" && e.Duration == "" && e.Description == ""
}

// BuildPreview maps doc to its preview. Values are shown as typed.
func BuildPreview(doc types.ResumeDocument) Preview {
	name := doc.Name
	if name == "" {
		name = DefaultName
	}
	return Preview{
		Name:         name,
		Email:        doc.Email,
		Phone:        doc.Phone,
		Location:     doc.Location,
		LinkedIn:     doc.LinkedIn,
		Summary:      doc.Summary,
		Education:    EducationLine(doc.Degree, doc.Institution, doc.Year, doc.CGPA),
		Skills:       slices.Clone(doc.Skills),
		Achievements: doc.Achievements,
		Experience: Experience{
			Title:       doc.ExpTitle,
			Org:         doc.ExpOrg,
			Duration:    doc.ExpDuration,
			Description: doc.ExpDesc,
		},
	}
}

// EducationLine formats "<degree> from <institution>, <year> (CGPA: <cgpa>)",
// dropping the parts whose values are empty. " from " is kept when either
// the degree or the institution is set.
func EducationLine(degree, institution, year, cgpa string) string {
	var b strings.Builder
	b.WriteString(degree)
	if degree != "" || institution != "" {
		b.WriteString(" from ")
	}
	b.WriteString(institution)
	if year != "" {
		b.WriteString(", " + year)
	}
	if cgpa != "" {
		b.WriteString(" (CGPA: " + cgpa + ")")
	}
	return b.String()
}
