// Package exporttest provides an in-process export.Exporter and a minimal
// PDF writer for tests that must not start a browser.
package exporttest

import (
	"bytes"
	"context"
	"fmt"
	"os"
)

// PDF returns a well-formed PDF document whose page tree holds pages empty
// letter-size pages.
func PDF(pages int) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	var kids bytes.Buffer
	for i := 0; i < pages; i++ {
		fmt.Fprintf(&kids, "%d 0 R ", i+3)
	}

	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [ %s] /Count %d >>", kids.String(), pages))
	for i := 0; i < pages; i++ {
		obj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

// Exporter records its last call and writes PDF(Pages) to the output path,
// or the raw HTML when Raw is set.
type Exporter struct {
	Pages int
	Raw   bool
	Err   error

	HTML string
	Path string
}

// Export implements export.Exporter.
func (e *Exporter) Export(_ context.Context, html, outPath string) error {
	e.HTML, e.Path = html, outPath
	if e.Err != nil {
		return e.Err
	}
	data := PDF(e.Pages)
	if e.Raw {
		data = []byte(html)
	}
	return os.WriteFile(outPath, data, 0o644)
}
