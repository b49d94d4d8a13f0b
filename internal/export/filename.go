package export

import (
	"regexp"
	"strings"
)

// User-facing export messages.
const (
	MsgNameRequired = "Please enter your name before downloading"
	MsgGenerating   = "Generating PDF..."
	MsgDownloaded   = "Resume downloaded successfully!"
	MsgFailed       = "Error generating PDF. Please try again."
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// PDFFilename derives the export file name from the resume name: the
// trimmed name with each whitespace run replaced by "_", plus "_Resume.pdf".
func PDFFilename(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return whitespaceRun.ReplaceAllString(name, "_") + "_Resume.pdf", nil
}
