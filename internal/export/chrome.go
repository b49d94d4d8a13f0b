// Package export turns the rendered resume preview into a PDF file.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/logger"
)

// Letter paper in inches with half-inch margins, portrait.
const (
	PaperWidth  = 8.5
	PaperHeight = 11.0
	Margin      = 0.5
)

// DefaultTimeout bounds one export when Options.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// Exporter writes an HTML document to outPath as a PDF.
type Exporter interface {
	Export(ctx context.Context, html, outPath string) error
}

// Options configures ChromeExporter.
type Options struct {
	Timeout time.Duration
	// ChromePath overrides chromedp's browser lookup.
	ChromePath string
}

// ChromeExporter prints HTML to PDF in headless Chrome. Chrome or Chromium
// must be installed.
type ChromeExporter struct {
	opts Options
	log  *logger.Logger
}

// NewChromeExporter returns a ChromeExporter.
func NewChromeExporter(opts Options, log *logger.Logger) *ChromeExporter {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ChromeExporter{opts: opts, log: log.Component("export")}
}

// Export loads html into a blank page and prints it to outPath. The PDF is
// written to a temporary file beside outPath and renamed into place.
func (c *ChromeExporter) Export(ctx context.Context, html, outPath string) error {
	id := uuid.NewString()
	log := c.log.With().Str("export_id", id).Str("path", outPath).Logger()
	log.Debug().Msg("starting headless browser")

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(c.opts.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, c.opts.Timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(PaperWidth).
				WithPaperHeight(PaperHeight).
				WithMarginTop(Margin).
				WithMarginBottom(Margin).
				WithMarginLeft(Margin).
				WithMarginRight(Margin).
				WithLandscape(false).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return &Error{Path: outPath, Message: "browser rendering failed", Cause: err}
	}

	if err := writeFile(outPath, id, pdf); err != nil {
		return err
	}

	log.Info().Int("bytes", len(pdf)).Msg("pdf exported")
	return nil
}

func writeFile(outPath, id string, data []byte) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &Error{Path: outPath, Message: "failed to create output directory", Cause: err}
		}
	}

	tmp := fmt.Sprintf("%s.%s.tmp", outPath, id)
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &Error{Path: outPath, Message: "failed to write pdf", Cause: err}
	}
	if err := os.Rename(tmp, outPath); err != nil {
		_ = os.Remove(tmp)
		return &Error{Path: outPath, Message: "failed to move pdf into place", Cause: err}
	}
	return nil
}
