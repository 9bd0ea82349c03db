package suggest

import (
	"strings"
	"testing"

	"github.com/salesflow-dev/salesflow/internal/catalog"
	"github.com/salesflow-dev/salesflow/internal/session"
)

// sessionWith builds a session whose checkpoint arrays match the catalog,
// with checkedPerNode[nodeID] leading checkpoints checked.
func sessionWith(t *testing.T, checkedPerNode map[string]int, outcome session.Outcome) session.Session {
	t.Helper()
	cat := catalog.MustLoad()

	states := make(map[string][]bool)
	for _, n := range cat.Nodes() {
		if len(n.Checkpoints) == 0 {
			continue
		}
		arr := make([]bool, len(n.Checkpoints))
		for i := 0; i < checkedPerNode[n.ID] && i < len(arr); i++ {
			arr[i] = true
		}
		states[n.ID] = arr
	}

	sess := session.Session{
		ID:               "test",
		CompanyName:      "Acme Corp",
		Status:           session.StatusCompleted,
		CheckpointStates: states,
	}
	if outcome != "" {
		sess.Result = &session.Result{Outcome: outcome}
	}
	return sess
}

// allChecked marks every checkpoint of every node complete.
func allChecked(t *testing.T, outcome session.Outcome) session.Session {
	t.Helper()
	counts := make(map[string]int)
	for _, n := range catalog.MustLoad().Nodes() {
		counts[n.ID] = len(n.Checkpoints)
	}
	return sessionWith(t, counts, outcome)
}

func TestGenerateDeterministic(t *testing.T) {
	cat := catalog.MustLoad()
	sess := sessionWith(t, map[string]int{"opening-1": 2, "hearing-1": 3}, session.OutcomeLost)

	first := Generate(cat, sess)
	second := Generate(cat, sess)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("suggestion %d differs between runs", i)
		}
	}
}

func TestLostOutcomeWithLowProposalRate(t *testing.T) {
	cat := catalog.MustLoad()
	// proposal-1 has 4 checkpoints; 1 checked = 25%, below the 80% bar.
	sess := allChecked(t, session.OutcomeLost)
	sess.CheckpointStates["proposal-1"] = []bool{true, false, false, false}

	got := Generate(cat, sess)

	if !containsSubstring(got, "proposal") && !containsSubstring(got, "Proposal") {
		t.Error("expected a proposal-review warning")
	}
	if !containsSubstring(got, "Loss analysis") {
		t.Error("expected the loss-analysis prompt")
	}
	if !containsSubstring(got, "differentiators") {
		t.Error("expected the differentiation prompt")
	}

	overall := 0
	for _, s := range got {
		if strings.Contains(s, "Overall checklist completion") {
			overall++
		}
	}
	if overall != 1 {
		t.Errorf("overall-rate messages: got %d, want exactly 1", overall)
	}
}

func TestLostPromptsAreUnconditional(t *testing.T) {
	cat := catalog.MustLoad()
	sess := allChecked(t, session.OutcomeLost) // every rate at 100

	got := Generate(cat, sess)
	if !containsSubstring(got, "Loss analysis") {
		t.Error("loss-analysis prompt must fire regardless of rates")
	}
	if !containsSubstring(got, "differentiators") {
		t.Error("differentiation prompt must fire regardless of rates")
	}
}

func TestPendingAndNextMeetingGetFollowUpReminder(t *testing.T) {
	cat := catalog.MustLoad()
	for _, outcome := range []session.Outcome{session.OutcomePending, session.OutcomeNextMeeting} {
		got := Generate(cat, allChecked(t, outcome))
		if !containsSubstring(got, "follow-up") {
			t.Errorf("outcome %s: expected a follow-up reminder", outcome)
		}
	}
}

func TestWonGetsCongratulation(t *testing.T) {
	cat := catalog.MustLoad()
	got := Generate(cat, allChecked(t, session.OutcomeWon))
	if !containsSubstring(got, "Congratulations") {
		t.Error("expected a congratulatory prompt")
	}
}

func TestHearingReminderLayersOnPhaseWarning(t *testing.T) {
	cat := catalog.MustLoad()
	// Hearing has 8 checkpoints across two nodes; 2 checked = 25%, below
	// both the 50% phase bar and the 70% hearing bar.
	sess := allChecked(t, session.OutcomeWon)
	sess.CheckpointStates["hearing-1"] = []bool{true, true, false, false, false}
	sess.CheckpointStates["hearing-2"] = []bool{false, false, false}

	got := Generate(cat, sess)

	phaseWarnings := 0
	for _, s := range got {
		if strings.Contains(s, "Hearing phase checklist") {
			phaseWarnings++
		}
	}
	if phaseWarnings != 1 {
		t.Errorf("hearing phase warnings: got %d, want 1", phaseWarnings)
	}
	if !containsSubstring(got, "question list") {
		t.Error("hearing-specific reminder should fire in addition to the phase warning")
	}
}

func TestPhaseWithNoRecordedCheckpointsIsVacuouslyComplete(t *testing.T) {
	cat := catalog.MustLoad()
	sess := allChecked(t, session.OutcomeWon)
	delete(sess.CheckpointStates, "opening-1")

	_, total, rate := PhaseCompletion(cat, sess, catalog.PhaseOpening)
	if total != 0 || rate != 100 {
		t.Errorf("empty phase: got total=%d rate=%d, want total=0 rate=100", total, rate)
	}

	got := Generate(cat, sess)
	if containsSubstring(got, "Opening phase checklist") {
		t.Error("vacuously complete phase must not warn")
	}
}

func TestOverallMessageThresholds(t *testing.T) {
	cat := catalog.MustLoad()

	cases := []struct {
		name string
		sess session.Session
		want string
	}{
		{"high", allChecked(t, session.OutcomeWon), "keep it up"},
		{"mid", sessionWith(t, map[string]int{
			// 20 of 26 checkpoints = 77%
			"opening-1": 3, "hearing-1": 5, "hearing-2": 3,
			"proposal-1": 4, "closing-1": 3, "closing-2": 2,
		}, session.OutcomeWon), "Almost there"},
		{"low", sessionWith(t, nil, session.OutcomeWon), "more deliberately"},
	}

	for _, tc := range cases {
		got := Generate(cat, tc.sess)
		last := got[len(got)-1]
		if !strings.Contains(last, tc.want) {
			t.Errorf("%s: final message %q should contain %q", tc.name, last, tc.want)
		}
	}
}

func TestOverallRateZeroWithNoCheckpoints(t *testing.T) {
	sess := session.Session{CheckpointStates: map[string][]bool{}}
	if got := OverallCompletion(sess); got != 0 {
		t.Errorf("overall rate with no checkpoints: got %d, want 0", got)
	}
}

func TestOutputOrdering(t *testing.T) {
	cat := catalog.MustLoad()
	// Everything unchecked, outcome lost: phase warnings first, then the
	// hearing reminder, then the loss prompts, then the overall message.
	sess := sessionWith(t, nil, session.OutcomeLost)

	got := Generate(cat, sess)
	if len(got) < 4 {
		t.Fatalf("expected a full suggestion list, got %d entries", len(got))
	}

	idx := func(substr string) int {
		for i, s := range got {
			if strings.Contains(s, substr) {
				return i
			}
		}
		return -1
	}

	phaseIdx := idx("Opening phase checklist")
	hearingIdx := idx("question list")
	lossIdx := idx("Loss analysis")
	overallIdx := idx("Overall checklist completion")

	if phaseIdx == -1 || hearingIdx == -1 || lossIdx == -1 || overallIdx == -1 {
		t.Fatalf("missing expected entries in %v", got)
	}
	if !(phaseIdx < hearingIdx && hearingIdx < lossIdx && lossIdx < overallIdx) {
		t.Errorf("ordering violated: phase=%d hearing=%d loss=%d overall=%d",
			phaseIdx, hearingIdx, lossIdx, overallIdx)
	}
	if overallIdx != len(got)-1 {
		t.Error("overall-rate message must come last")
	}
}

func containsSubstring(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
