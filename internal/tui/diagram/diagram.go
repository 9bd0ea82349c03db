// Package diagram renders the script flow as ASCII, grouped by phase.
package diagram

import (
	"fmt"
	"strings"

	"github.com/salesflow-dev/salesflow/internal/catalog"
	"github.com/salesflow-dev/salesflow/internal/session"
	"github.com/salesflow-dev/salesflow/internal/tui"
)

// ProgressFunc reports checkpoint progress for a node id. A nil func
// renders the flow without progress annotations.
type ProgressFunc func(nodeID string) session.Progress

// Render draws the full flow. The selected node id is highlighted.
func Render(cat *catalog.Catalog, progress ProgressFunc, selected string) string {
	var b strings.Builder

	for _, phase := range catalog.Phases {
		nodes := cat.NodesInPhase(phase)
		if len(nodes) == 0 {
			continue
		}

		b.WriteString(tui.PhaseStyle(phase).Render("── " + phase.Label() + " "))
		b.WriteString("\n")

		for _, n := range nodes {
			b.WriteString(renderNode(cat, n, progress, n.ID == selected))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderNode(cat *catalog.Catalog, n catalog.Node, progress ProgressFunc, selected bool) string {
	var b strings.Builder

	marker := "  "
	title := n.Title
	if selected {
		marker = tui.SelectedStyle.Render("▸ ")
		title = tui.SelectedStyle.Render(title)
	}

	line := fmt.Sprintf("%s%s %s", marker, title, tui.DimStyle.Render("("+n.Duration+")"))

	if progress != nil && len(n.Checkpoints) > 0 {
		p := progress(n.ID)
		if p.Total > 0 {
			line += fmt.Sprintf("  %s %d/%d", tui.ProgressBar(p.Completed, p.Total, 8), p.Completed, p.Total)
		}
	}

	b.WriteString(line)
	b.WriteString("\n")

	// Outgoing transitions, indented beneath the node.
	for _, next := range cat.NextNodes(n.ID) {
		b.WriteString(tui.DimStyle.Render(fmt.Sprintf("      └→ %s", next.Title)))
		b.WriteString("\n")
	}

	return b.String()
}
