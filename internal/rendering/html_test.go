package rendering

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() types.ResumeDocument {
	return types.ResumeDocument{
		Name:         "Jane Roe",
		Email:        "jane@example.com",
		Phone:        "+1 555 0100",
		Location:     "Austin, TX",
		LinkedIn:     "linkedin.com/in/jane",
		Summary:      "Backend engineer.",
		Degree:       "BSc",
		Institution:  "UT",
		Year:         "2019",
		CGPA:         "3.9",
		Skills:       []string{"Go", "Postgres"},
		ExpTitle:     "Engineer",
		ExpOrg:       "Acme",
		ExpDuration:  "2019 - Present",
		ExpDesc:      "Built services.",
		Achievements: "Speaker at GopherCon",
	}
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleDoc())
	require.NoError(t, err)

	doc := parse(t, html)
	assert.Equal(t, "Jane Roe", doc.Find("#preview-name").Text())
	assert.Equal(t, "jane@example.com", doc.Find("#preview-email").Text())
	assert.Equal(t, "BSc from UT, 2019 (CGPA: 3.9)", doc.Find("#preview-education").Text())
	assert.Equal(t, 2, doc.Find("#preview-skills span").Length())
	assert.Equal(t, "Engineer", doc.Find("#preview-experience strong").Text())
	assert.Equal(t, 2, doc.Find("#preview-experience br").Length())
	assert.Contains(t, doc.Find("#preview-experience").Text(), "Engineer at Acme")
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	d := sampleDoc()
	d.Name = "<script>alert(1)</script>"
	d.Skills = []string{"<b>Go</b>"}

	html, err := RenderHTML(d)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, "<b>Go</b>")

	doc := parse(t, html)
	assert.Equal(t, "<script>alert(1)</script>", doc.Find("#preview-name").Text())
}

func TestRenderHTML_EmptyDocument(t *testing.T) {
	html, err := RenderHTML(types.ResumeDocument{})
	require.NoError(t, err)

	doc := parse(t, html)
	assert.Equal(t, DefaultName, doc.Find("#preview-name").Text())
	assert.Empty(t, doc.Find("#preview-experience").Text())
	assert.Equal(t, 0, doc.Find("#preview-skills span").Length())
}

func TestRenderHTMLFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("custom template", func(t *testing.T) {
		path := filepath.Join(dir, "custom.html")
		require.NoError(t, os.WriteFile(path, []byte(`<h1>{{.Name}}</h1>`), 0o600))

		html, err := RenderHTMLFile(types.ResumeDocument{Name: "A & B"}, path)
		require.NoError(t, err)
		assert.Equal(t, "<h1>A &amp; B</h1>", html)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := RenderHTMLFile(sampleDoc(), filepath.Join(dir, "nope.html"))
		var tmplErr *TemplateError
		require.True(t, errors.As(err, &tmplErr))
		assert.Equal(t, StageLoad, tmplErr.Stage)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("parse error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.html")
		require.NoError(t, os.WriteFile(path, []byte(`{{.Name`), 0o600))

		_, err := RenderHTMLFile(sampleDoc(), path)
		var tmplErr *TemplateError
		require.True(t, errors.As(err, &tmplErr))
		assert.Equal(t, StageParse, tmplErr.Stage)
		assert.Equal(t, path, tmplErr.Template)
	})

	t.Run("execute error", func(t *testing.T) {
		path := filepath.Join(dir, "badfield.html")
		require.NoError(t, os.WriteFile(path, []byte(`{{.Missing}}`), 0o600))

		_, err := RenderHTMLFile(sampleDoc(), path)
		var tmplErr *TemplateError
		require.True(t, errors.As(err, &tmplErr))
		assert.Equal(t, StageExecute, tmplErr.Stage)
	})
}

func TestErrors(t *testing.T) {
	cause := errors.New("boom")
	assert.Equal(t, "preview template built-in: execute: boom",
		(&TemplateError{Template: BuiltinTemplate, Stage: StageExecute, Cause: cause}).Error())
	assert.Equal(t, "preview text: boom", (&TextError{Cause: cause}).Error())
	assert.ErrorIs(t, &TextError{Cause: cause}, cause)
}
