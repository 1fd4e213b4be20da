package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestPDFTextRendererErrors(t *testing.T) {
	renderer := NewPDFTextRenderer()
	viewport := DefaultViewport()

	t.Run("missing_file", func(t *testing.T) {
		_, err := renderer.RenderRich("/no/such/doc.pdf", viewport)
		assert.IsError(t, err, ErrDecodeFailure)
	})

	t.Run("not_a_pdf", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fake.pdf")
		assert.NoError(t, os.WriteFile(path, []byte("plain text, no PDF header"), 0644))
		_, err := renderer.RenderRich(path, viewport)
		assert.IsError(t, err, ErrDecodeFailure)
	})

	t.Run("degraded_yields_no_preview", func(t *testing.T) {
		content := renderer.RenderDegraded("/no/such/doc.pdf", viewport)
		assert.Equal(t, NoPreview(), content)
	})
}

func TestPDFTextRendererDefaults(t *testing.T) {
	renderer := NewPDFTextRenderer()
	assert.Equal(t, DefaultPDFMaxPages, renderer.MaxPages)
	assert.Equal(t, DefaultPDFMaxChars, renderer.MaxChars)
}
