package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeDocument_JSONKeys(t *testing.T) {
	doc := ResumeDocument{
		Name:         "n",
		Email:        "e",
		Phone:        "p",
		Location:     "l",
		LinkedIn:     "li",
		Summary:      "s",
		Degree:       "d",
		Institution:  "i",
		Year:         "y",
		CGPA:         "c",
		Skills:       []string{"A"},
		ExpTitle:     "t",
		ExpOrg:       "o",
		ExpDuration:  "du",
		ExpDesc:      "de",
		Achievements: "a",
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))

	for _, k := range []string{
		"name", "email", "phone", "location", "linkedin", "summary",
		"degree", "institution", "year", "cgpa", "skills",
		"expTitle", "expOrg", "expDuration", "expDesc", "achievements",
	} {
		assert.Contains(t, keys, k)
	}
	assert.Len(t, keys, 16)
}

func TestResumeDocument_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		doc  ResumeDocument
		want string
	}{
		{name: "never edited", doc: ResumeDocument{}, want: `{}`},
		{name: "empty skills only", doc: ResumeDocument{Skills: []string{}}, want: `{}`},
		{
			name: "one field set",
			doc:  ResumeDocument{Name: "Ada"},
			want: `{"name":"Ada","email":"","phone":"","location":"","linkedin":"","summary":"",` +
				`"degree":"","institution":"","year":"","cgpa":"","skills":[],"expTitle":"",` +
				`"expOrg":"","expDuration":"","expDesc":"","achievements":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.doc)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestResumeDocument_MarshalRoundTripInRecord(t *testing.T) {
	rec := AccountRecord{Resume: ResumeDocument{Name: "Ada", Skills: []string{"Go"}}}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"resume":{"name":"Ada","email":""`)

	var back AccountRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec.Resume, back.Resume)
}

func TestResumeDocument_CloneDoesNotAliasSkills(t *testing.T) {
	doc := ResumeDocument{Skills: []string{"A", "B"}}
	c := doc.Clone()
	c.Skills = append(c.Skills[:1], "C")

	assert.Equal(t, []string{"A", "B"}, doc.Skills)
	assert.Equal(t, []string{"A", "C"}, c.Skills)
}

func TestResumeDocument_IsZero(t *testing.T) {
	assert.True(t, ResumeDocument{}.IsZero())
	assert.True(t, ResumeDocument{Skills: []string{}}.IsZero())
	assert.False(t, ResumeDocument{Year: "2020"}.IsZero())
	assert.False(t, ResumeDocument{Skills: []string{"Go"}}.IsZero())
}

func TestResumeDocument_Validate(t *testing.T) {
	valid := ResumeDocument{
		Email:    "john@x.com",
		Phone:    "+1 (555) 123-4567",
		LinkedIn: "linkedin.com/in/johndoe",
		Skills:   []string{"Go", "SQL"},
	}
	errs, err := valid.Validate()
	require.NoError(t, err)
	assert.Zero(t, errs.Len())

	empty, err := ResumeDocument{}.Validate()
	require.NoError(t, err)
	assert.Zero(t, empty.Len(), "optional contact fields may be empty")

	invalid := ResumeDocument{
		Email:    "john",
		Phone:    "call me",
		LinkedIn: "not a url",
		Skills:   []string{"Go", "Go"},
	}
	errs, err = invalid.Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"Email", "Phone", "LinkedIn", "Skills"}, errs.Fields())

	msg, _ := errs.Get("Phone")
	assert.Equal(t, "Please enter a valid phone number", msg)
	msg, _ = errs.Get("LinkedIn")
	assert.Equal(t, "Please enter a valid URL", msg)
	msg, _ = errs.Get("Skills")
	assert.Equal(t, "Skills must be unique", msg)
}
