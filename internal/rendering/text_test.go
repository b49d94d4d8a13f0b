package rendering

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	html, err := RenderHTML(sampleDoc())
	require.NoError(t, err)

	text, err := PlainText(html)
	require.NoError(t, err)

	want := "Jane Roe\n" +
		"jane@example.com | +1 555 0100 | Austin, TX | linkedin.com/in/jane\n" +
		"\nSUMMARY\nBackend engineer.\n" +
		"\nEDUCATION\nBSc from UT, 2019 (CGPA: 3.9)\n" +
		"\nSKILLS\nGo, Postgres\n" +
		"\nEXPERIENCE\nEngineer at Acme\n2019 - Present\nBuilt services.\n" +
		"\nACHIEVEMENTS\nSpeaker at GopherCon\n"
	assert.Equal(t, want, text)
}

func TestPlainText_SkipsEmptySections(t *testing.T) {
	html, err := RenderHTML(types.ResumeDocument{Skills: []string{"Go"}})
	require.NoError(t, err)

	text, err := PlainText(html)
	require.NoError(t, err)
	assert.Equal(t, "Your Name\n\nSKILLS\nGo\n", text)
}
