package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized_RendersBasicMarkdown(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("# Dosage\n\nTake **500mg** daily.")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1 id=\"dosage\">Dosage</h1>")
	assert.Contains(t, out, "<strong>500mg</strong>")
}

func TestToHTMLSanitized_StripsScripts(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("hello <script>alert(1)</script> world")
	require.NoError(t, err)

	// The renderer drops raw HTML tags before sanitization, so the script
	// payload may survive as inert text. What must never appear is the
	// executable markup itself.
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "</script")
	assert.Contains(t, out, "hello")
}

func TestSanitize_DropsScriptContent(t *testing.T) {
	svc := NewService()

	out := svc.Sanitize("<p>safe</p><script>alert(1)</script>")

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "alert(1)")
	assert.Contains(t, out, "<p>safe</p>")
}

func TestToHTMLSanitized_StripsEventHandlers(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized(`<img src="x" onerror="alert(1)">`)
	require.NoError(t, err)

	assert.NotContains(t, out, "onerror")
}

func TestToHTML_GFMTable(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTML("| Brand | Rating |\n|---|---|\n| Alpha | 4 |")
	require.NoError(t, err)

	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>Alpha</td>")
}
