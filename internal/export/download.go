package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/feedback"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// Result describes a written PDF.
type Result struct {
	Path  string
	Pages int
}

// Download renders doc and exports it into dir under PDFFilename(doc.Name),
// reporting progress through fb. The written file is read back and rejected
// (and removed) unless it parses as a PDF with at least one page.
func Download(ctx context.Context, exp Exporter, doc types.ResumeDocument, dir string, fb feedback.Feedback) (Result, error) {
	if fb == nil {
		fb = feedback.Discard
	}

	name, err := PDFFilename(doc.Name)
	if err != nil {
		fb.ShowToast(MsgNameRequired, feedback.ToastError)
		return Result{}, err
	}

	fb.ShowToast(MsgGenerating, feedback.ToastInfo)

	html, err := rendering.RenderHTML(doc)
	if err != nil {
		fb.ShowToast(MsgFailed, feedback.ToastError)
		return Result{}, err
	}

	path := filepath.Join(dir, name)
	if err := exp.Export(ctx, html, path); err != nil {
		fb.ShowToast(MsgFailed, feedback.ToastError)
		return Result{}, err
	}

	pages, err := CountPages(path)
	if err == nil && pages == 0 {
		err = &Error{Path: path, Message: "pdf has no pages", Cause: ErrNoPages}
	}
	if err != nil {
		_ = os.Remove(path)
		fb.ShowToast(MsgFailed, feedback.ToastError)
		return Result{}, err
	}

	fb.ShowToast(MsgDownloaded, feedback.ToastSuccess)
	return Result{Path: path, Pages: pages}, nil
}
