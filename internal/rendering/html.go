package rendering

import (
	"embed"
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/preview.html.tmpl
var templateFS embed.FS

var builtin = template.Must(template.ParseFS(templateFS, "templates/preview.html.tmpl"))

// RenderHTML renders doc as a standalone HTML page using the built-in
// template. All content is escaped.
func RenderHTML(doc types.ResumeDocument) (string, error) {
	return execute(builtin, BuiltinTemplate, doc)
}

// RenderHTMLFile renders doc with the html/template at templatePath. The
// template receives a Preview. A missing file unwraps to fs.ErrNotExist.
func RenderHTMLFile(doc types.ResumeDocument, templatePath string) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		return "", &TemplateError{Template: templatePath, Stage: StageLoad, Cause: err}
	}

	tmpl, err := template.New(templatePath).Parse(string(content))
	if err != nil {
		return "", &TemplateError{Template: templatePath, Stage: StageParse, Cause: err}
	}
	return execute(tmpl, templatePath, doc)
}

func execute(tmpl *template.Template, name string, doc types.ResumeDocument) (string, error) {
	var out strings.Builder
	if err := tmpl.Execute(&out, BuildPreview(doc)); err != nil {
		return "", &TemplateError{Template: name, Stage: StageExecute, Cause: err}
	}
	return out.String(), nil
}
