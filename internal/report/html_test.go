package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/worklog/internal/report"
)

func TestRenderHTML(t *testing.T) {
	got := report.RenderHTML(threeDaySummary())

	assert.True(t, strings.HasPrefix(got, "<html>"))
	assert.Contains(t, got, "<h1>Work Summary 3/2025</h1>")
	assert.Contains(t, got, `<tr class="worked">`)
	assert.Contains(t, got, `<tr class="not-worked">`)
	assert.Contains(t, got, `<td contenteditable="false">9:00</td>`)
	assert.Contains(t, got, `<td contenteditable="false">17:30</td>`)
	assert.Contains(t, got, `<td contenteditable="false">8.50</td>`)
	assert.Contains(t, got, "Total Hours: 8.50")

	// Cells start read-only; the toggle button flips them client-side.
	assert.Contains(t, got, "toggleEditMode()")
	assert.Contains(t, got, "copyTableToClipboard()")
	assert.NotContains(t, got, `contenteditable="true"`)

	// One data row per day plus the header row.
	assert.Equal(t, 4, strings.Count(got, "<tr"))
}

func TestWriteHTMLFile(t *testing.T) {
	dir := t.TempDir()
	s := threeDaySummary()

	path, err := report.WriteHTMLFile(dir, s)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "work-summary-2025-3.html"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, report.RenderHTML(s), string(content))
}
