// Package report generates a readable summary of one sales session.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/salesflow-dev/salesflow/internal/catalog"
	"github.com/salesflow-dev/salesflow/internal/session"
	"github.com/salesflow-dev/salesflow/internal/suggest"
)

// PhaseStat holds per-phase checkpoint completion for the report.
type PhaseStat struct {
	Phase     catalog.Phase
	Completed int
	Total     int
	Rate      int
}

// Report holds the aggregated view of one session.
type Report struct {
	Session     session.Session
	OverallRate int
	Phases      []PhaseStat
}

// Generate builds a Report for the given session.
func Generate(cat *catalog.Catalog, sess session.Session) *Report {
	r := &Report{
		Session:     sess,
		OverallRate: suggest.OverallCompletion(sess),
	}
	for _, phase := range catalog.Phases {
		completed, total, rate := suggest.PhaseCompletion(cat, sess, phase)
		r.Phases = append(r.Phases, PhaseStat{
			Phase:     phase,
			Completed: completed,
			Total:     total,
			Rate:      rate,
		})
	}
	return r
}

// Format produces a terminal-friendly, human-readable summary string.
func Format(cat *catalog.Catalog, r *Report) string {
	var b strings.Builder

	b.WriteString("========================================\n")
	b.WriteString("  Sales Session Report\n")
	b.WriteString("========================================\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "Company:     %s\n", r.Session.CompanyName)
	if r.Session.ContactPerson != "" {
		fmt.Fprintf(&b, "Contact:     %s\n", r.Session.ContactPerson)
	}
	fmt.Fprintf(&b, "Created:     %s\n", r.Session.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Status:      %s\n", r.Session.Status)
	b.WriteString("\n")

	b.WriteString("Phase completion:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "  %-10s %d/%d (%d%%)\n", p.Phase.Label()+":", p.Completed, p.Total, p.Rate)
	}
	fmt.Fprintf(&b, "Overall:     %d%%\n", r.OverallRate)
	b.WriteString("\n")

	b.WriteString("Checkpoints:\n")
	for _, node := range cat.Nodes() {
		states := r.Session.CheckpointStates[node.ID]
		if len(states) == 0 || len(states) != len(node.Checkpoints) {
			continue
		}
		fmt.Fprintf(&b, "  %s\n", node.Title)
		for i, cp := range node.Checkpoints {
			mark := "[ ]"
			if states[i] {
				mark = "[x]"
			}
			fmt.Fprintf(&b, "    %s %s\n", mark, cp)
		}
	}
	b.WriteString("\n")

	if res := r.Session.Result; res != nil {
		b.WriteString("Result:\n")
		fmt.Fprintf(&b, "  Outcome:   %s\n", res.Outcome.Label())
		if res.Revenue > 0 {
			fmt.Fprintf(&b, "  Revenue:   %.0f\n", res.Revenue)
		}
		if res.NextAction != "" {
			fmt.Fprintf(&b, "  Next:      %s\n", res.NextAction)
		}
		if res.Notes != "" {
			fmt.Fprintf(&b, "  Notes:     %s\n", res.Notes)
		}
		b.WriteString("\n")
	}

	if len(r.Session.Suggestions) > 0 {
		b.WriteString("Suggestions:\n")
		for _, s := range r.Session.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
		b.WriteString("\n")
	}

	b.WriteString("========================================\n")

	return b.String()
}

// Write writes the formatted report to {dir}/report-{sessionID}.md.
// Creates the directory if it does not exist.
func Write(dir string, cat *catalog.Catalog, r *Report) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	content := Format(cat, r)
	path := filepath.Join(dir, fmt.Sprintf("report-%s.md", r.Session.ID))

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing report file: %w", err)
	}

	return path, nil
}
