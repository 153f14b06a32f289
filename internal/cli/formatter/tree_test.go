package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTree_Connectors(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "Root", Level: 0},
		{Title: "First", Level: 1},
		{Title: "Last", Level: 1, IsLast: true},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], treeBranch)
	assert.Contains(t, lines[2], treeCorner)
}

func TestRenderTree_StatusPrefixes(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "Done item", Level: 0, Status: "completed"},
		{Title: "Active item", Level: 0, Status: "in_progress"},
	})

	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "▶")
}

func TestRenderTree_BadgeRightAligned(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "Short", Level: 0, Detail: "due soon"},
		{Title: "A much longer title here", Level: 0},
	})

	assert.Contains(t, out, "[ due soon ]")
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Empty(t, RenderTree(nil))
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(-0.5, 8), "  0%")
	assert.Contains(t, RenderProgress(1.5, 8), "100%")
	assert.Contains(t, RenderProgress(0.45, 8), " 45%")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Name"},
		[][]string{{"p1", "Alpha"}, {"p2", "A longer name"}},
	)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "A longer name")
	assert.Contains(t, out, "─")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
