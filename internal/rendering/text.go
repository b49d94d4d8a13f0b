package rendering

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var contactIDs = []string{"#preview-email", "#preview-phone", "#preview-location", "#preview-linkedin"}

// PlainText converts rendered preview HTML to terminal text: the name, a
// contact line, then one block per non-empty section under an upper-case
// heading.
func PlainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &TextError{Cause: err}
	}

	doc.Find("style, script").Remove()
	doc.Find("br").ReplaceWithHtml("\n")

	var b strings.Builder
	b.WriteString(cleanLine(doc.Find("#preview-name").Text()))
	b.WriteString("\n")

	var contact []string
	for _, id := range contactIDs {
		if v := cleanLine(doc.Find(id).Text()); v != "" {
			contact = append(contact, v)
		}
	}
	if len(contact) > 0 {
		b.WriteString(strings.Join(contact, " | "))
		b.WriteString("\n")
	}

	doc.Find("section").Each(func(_ int, s *goquery.Selection) {
		heading := cleanLine(s.Find("h2").Text())
		s.Find("h2").Remove()

		var body string
		if spans := s.Find("#preview-skills span"); spans.Length() > 0 {
			body = strings.Join(spans.Map(func(_ int, sp *goquery.Selection) string {
				return cleanLine(sp.Text())
			}), ", ")
		} else {
			body = cleanBlock(s.Text())
		}
		if body == "" {
			return
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", strings.ToUpper(heading), body)
	})

	return b.String(), nil
}

func cleanLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func cleanBlock(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if l := cleanLine(line); l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}
