package export

import (
	"github.com/ledongthuc/pdf"
)

// CountPages returns the number of pages in the PDF at path.
func CountPages(path string) (int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, &Error{Path: path, Message: "failed to read pdf", Cause: err}
	}
	defer f.Close()

	return r.NumPage(), nil
}
