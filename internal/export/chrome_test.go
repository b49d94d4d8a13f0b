package export

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/resume"
)

func findChrome(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser export in short mode")
	}
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("Chrome not installed")
	return ""
}

func TestChromeExporter_Export(t *testing.T) {
	chrome := findChrome(t)

	html, err := rendering.RenderHTML(resume.SampleDocument())
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "nested", "John_Doe_Resume.pdf")
	exp := NewChromeExporter(Options{Timeout: 30 * time.Second, ChromePath: chrome}, logger.Nop())
	require.NoError(t, exp.Export(context.Background(), html, out))

	pages, err := CountPages(out)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)

	matches, err := filepath.Glob(out + ".*.tmp")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestChromeExporter_BadBrowserPath(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser export in short mode")
	}
	exp := NewChromeExporter(Options{Timeout: 5 * time.Second, ChromePath: "/nonexistent/chrome"}, nil)
	out := filepath.Join(t.TempDir(), "x.pdf")

	err := exp.Export(context.Background(), "<html><body>x</body></html>", out)
	var exportErr *Error
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, out, exportErr.Path)
	assert.NoFileExists(t, out)
}

func TestCountPages_NotPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, err := CountPages(path)
	var exportErr *Error
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, "failed to read pdf", exportErr.Message)
}

func TestNewChromeExporter_Defaults(t *testing.T) {
	exp := NewChromeExporter(Options{}, nil)
	assert.Equal(t, DefaultTimeout, exp.opts.Timeout)
}
