package types

import (
	"encoding/json"
	"slices"

	"github.com/jonathan/resume-builder/internal/validation"
)

// ResumeDocument is the resume content embedded in an AccountRecord. It is
// replaced wholesale on every save. A document with no field set encodes as
// {} (a fresh account); any other document encodes all sixteen keys, with
// "skills" as an array even when empty.
type ResumeDocument struct {
	Name         string   `json:"name,omitempty"`
	Email        string   `json:"email,omitempty" validate:"omitempty,resume_email"`
	Phone        string   `json:"phone,omitempty" validate:"omitempty,resume_phone"`
	Location     string   `json:"location,omitempty"`
	LinkedIn     string   `json:"linkedin,omitempty" validate:"resume_url"`
	Summary      string   `json:"summary,omitempty"`
	Degree       string   `json:"degree,omitempty"`
	Institution  string   `json:"institution,omitempty"`
	Year         string   `json:"year,omitempty"`
	CGPA         string   `json:"cgpa,omitempty"`
	Skills       []string `json:"skills,omitempty" validate:"unique,dive,filled"`
	ExpTitle     string   `json:"expTitle,omitempty"`
	ExpOrg       string   `json:"expOrg,omitempty"`
	ExpDuration  string   `json:"expDuration,omitempty"`
	ExpDesc      string   `json:"expDesc,omitempty"`
	Achievements string   `json:"achievements,omitempty"`
}

var resumeMessages = validation.Messages{
	"Email.resume_email":  "Please enter a valid email address",
	"Phone.resume_phone":  "Please enter a valid phone number",
	"LinkedIn.resume_url": "Please enter a valid URL",
	"Skills.unique":       "Skills must be unique",
}

// resumeJSON mirrors ResumeDocument field for field without omitempty.
type resumeJSON struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Location     string   `json:"location"`
	LinkedIn     string   `json:"linkedin"`
	Summary      string   `json:"summary"`
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Year         string   `json:"year"`
	CGPA         string   `json:"cgpa"`
	Skills       []string `json:"skills"`
	ExpTitle     string   `json:"expTitle"`
	ExpOrg       string   `json:"expOrg"`
	ExpDuration  string   `json:"expDuration"`
	ExpDesc      string   `json:"expDesc"`
	Achievements string   `json:"achievements"`
}

// MarshalJSON implements json.Marshaler.
func (d ResumeDocument) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("{}"), nil
	}
	out := resumeJSON(d)
	if out.Skills == nil {
		out.Skills = []string{}
	}
	return json.Marshal(out)
}

// Clone returns a copy of d whose skills slice is not shared with d.
func (d ResumeDocument) Clone() ResumeDocument {
	d.Skills = slices.Clone(d.Skills)
	return d
}

// IsZero reports whether no field of d is set.
func (d ResumeDocument) IsZero() bool {
	return d.Name == "" && d.Email == "" && d.Phone == "" && d.Location == "" &&
		d.LinkedIn == "" && d.Summary == "" && d.Degree == "" && d.Institution == "" &&
		d.Year == "" && d.CGPA == "" && len(d.Skills) == 0 && d.ExpTitle == "" &&
		d.ExpOrg == "" && d.ExpDuration == "" && d.ExpDesc == "" && d.Achievements == ""
}

// Validate checks the contact fields and the skills list. Failures are keyed
// by Go field name. Saving does not call it; the editor checks fields as they
// are typed and the account audit reports stored documents that fail.
func (d ResumeDocument) Validate() (*validation.FieldErrors, error) {
	return validation.Check(d, resumeMessages)
}
