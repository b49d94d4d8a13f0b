package resume

import "github.com/jonathan/resume-builder/internal/types"

// Form field ids of the resume editor.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldLocation     = "location"
	FieldLinkedIn     = "linkedin"
	FieldSummary      = "summary"
	FieldDegree       = "degree"
	FieldInstitution  = "institution"
	FieldYear         = "year"
	FieldCGPA         = "cgpa"
	FieldExpTitle     = "exp-title"
	FieldExpOrg       = "exp-org"
	FieldExpDuration  = "exp-duration"
	FieldExpDesc      = "exp-desc"
	FieldAchievements = "achievements"
)

// Live validation messages.
const (
	MsgInvalidEmail = "Please enter a valid email address"
	MsgInvalidPhone = "Please enter a valid phone number"
	MsgInvalidURL   = "Please enter a valid URL"
)

var fieldOrder = []string{
	FieldName, FieldEmail, FieldPhone, FieldLocation, FieldLinkedIn, FieldSummary,
	FieldDegree, FieldInstitution, FieldYear, FieldCGPA,
	FieldExpTitle, FieldExpOrg, FieldExpDuration, FieldExpDesc, FieldAchievements,
}

var fieldRefs = map[string]func(*types.ResumeDocument) *string{
	FieldName:         func(d *types.ResumeDocument) *string { return &d.Name },
	FieldEmail:        func(d *types.ResumeDocument) *string { return &d.Email },
	FieldPhone:        func(d *types.ResumeDocument) *string { return &d.Phone },
	FieldLocation:     func(d *types.ResumeDocument) *string { return &d.Location },
	FieldLinkedIn:     func(d *types.ResumeDocument) *string { return &d.LinkedIn },
	FieldSummary:      func(d *types.ResumeDocument) *string { return &d.Summary },
	FieldDegree:       func(d *types.ResumeDocument) *string { return &d.Degree },
	FieldInstitution:  func(d *types.ResumeDocument) *string { return &d.Institution },
	FieldYear:         func(d *types.ResumeDocument) *string { return &d.Year },
	FieldCGPA:         func(d *types.ResumeDocument) *string { return &d.CGPA },
	FieldExpTitle:     func(d *types.ResumeDocument) *string { return &d.ExpTitle },
	FieldExpOrg:       func(d *types.ResumeDocument) *string { return &d.ExpOrg },
	FieldExpDuration:  func(d *types.ResumeDocument) *string { return &d.ExpDuration },
	FieldExpDesc:      func(d *types.ResumeDocument) *string { return &d.ExpDesc },
	FieldAchievements: func(d *types.ResumeDocument) *string { return &d.Achievements },
}

// Fields returns the scalar field ids in form order.
func Fields() []string {
	out := make([]string, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// Get returns the value of field id in doc.
func Get(doc types.ResumeDocument, id string) (string, error) {
	ref, ok := fieldRefs[id]
	if !ok {
		return "", &UnknownFieldError{Field: id}
	}
	return *ref(&doc), nil
}
