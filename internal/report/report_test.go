package report

import (
	"os"
	"strings"
	"testing"

	"github.com/salesflow-dev/salesflow/internal/catalog"
	"github.com/salesflow-dev/salesflow/internal/session"
)

func testSession() session.Session {
	return session.Session{
		ID:          "abc123",
		CompanyName: "Acme Corp",
		Status:      session.StatusCompleted,
		CheckpointStates: map[string][]bool{
			"opening-1": {true, true, false},
		},
		Result:      &session.Result{Outcome: session.OutcomeWon, Revenue: 15000},
		Suggestions: []string{"Record the success factors."},
	}
}

func TestGeneratePhaseStats(t *testing.T) {
	cat := catalog.MustLoad()
	r := Generate(cat, testSession())

	if len(r.Phases) != len(catalog.Phases) {
		t.Fatalf("phase stats: got %d, want %d", len(r.Phases), len(catalog.Phases))
	}
	opening := r.Phases[0]
	if opening.Phase != catalog.PhaseOpening || opening.Completed != 2 || opening.Total != 3 {
		t.Errorf("opening stats: got %+v", opening)
	}
	if r.OverallRate != 67 {
		t.Errorf("overall rate: got %d, want 67", r.OverallRate)
	}
}

func TestFormatIncludesAllSections(t *testing.T) {
	cat := catalog.MustLoad()
	out := Format(cat, Generate(cat, testSession()))

	for _, want := range []string{
		"Acme Corp",
		"Phase completion:",
		"Overall:     67%",
		"[x]",
		"[ ]",
		"Outcome:   Won",
		"Record the success factors.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteCreatesFile(t *testing.T) {
	cat := catalog.MustLoad()
	dir := t.TempDir()

	path, err := Write(dir, cat, Generate(cat, testSession()))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.Contains(string(data), "Sales Session Report") {
		t.Error("written report missing header")
	}
}
