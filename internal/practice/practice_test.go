package practice

import (
	"testing"

	"github.com/salesflow-dev/salesflow/internal/catalog"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(catalog.MustLoad(), 42)
}

func TestStartActivatesWithFullPool(t *testing.T) {
	e := newEngine(t)
	e.Start()

	if !e.Active() {
		t.Fatal("engine should be active after Start")
	}
	want := len(catalog.MustLoad().AllQA())
	if e.TotalQuestions() != want {
		t.Errorf("pool size: got %d, want %d", e.TotalQuestions(), want)
	}
	if e.Current() == nil {
		t.Fatal("expected a current question")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	e := newEngine(t)
	e.Start()

	pool := catalog.MustLoad().AllQA()
	seen := make(map[string]int)
	for _, qa := range pool {
		seen[qa.Question]++
	}
	for i := 0; i < e.TotalQuestions(); i++ {
		seen[e.Current().Question]--
		e.Next(false)
	}
	for q, n := range seen {
		if n != 0 {
			t.Errorf("question %q: count off by %d after one full cycle", q, n)
		}
	}
}

func TestShuffleFixedForTheRun(t *testing.T) {
	e := newEngine(t)
	e.Start()

	first := e.Current().Question
	e.ToggleRole()
	e.RevealAnswer()
	if e.Current().Question != first {
		t.Error("role toggle and reveal must not reshuffle or advance")
	}
}

func TestNextAdvancesAndWraps(t *testing.T) {
	e := newEngine(t)
	e.Start()

	total := e.TotalQuestions()
	for i := 0; i < total-1; i++ {
		e.Next(false)
	}
	if e.Index() != total-1 {
		t.Fatalf("index: got %d, want %d", e.Index(), total-1)
	}

	e.Next(false)
	if e.Index() != 0 {
		t.Errorf("index should wrap to 0, got %d", e.Index())
	}
}

func TestNextScoresAndClearsReveal(t *testing.T) {
	e := newEngine(t)
	e.Start()

	e.RevealAnswer()
	if !e.ShowAnswer() {
		t.Fatal("RevealAnswer should set the flag")
	}

	e.Next(true)
	if e.ShowAnswer() {
		t.Error("Next should clear the reveal flag")
	}
	if e.Score() != 1 || e.Answered() != 1 {
		t.Errorf("score/answered: got %d/%d, want 1/1", e.Score(), e.Answered())
	}

	e.Next(false)
	if e.Score() != 1 || e.Answered() != 2 {
		t.Errorf("score/answered: got %d/%d, want 1/2", e.Score(), e.Answered())
	}
}

func TestResetScoreKeepsPosition(t *testing.T) {
	e := newEngine(t)
	e.Start()

	e.Next(true)
	e.Next(true)
	pos := e.Index()
	current := e.Current().Question

	e.ResetScore()
	if e.Score() != 0 || e.Answered() != 0 {
		t.Errorf("score/answered after reset: got %d/%d, want 0/0", e.Score(), e.Answered())
	}
	if e.Index() != pos || e.Current().Question != current {
		t.Error("ResetScore must not move the position or reshuffle")
	}
}

func TestToggleRole(t *testing.T) {
	e := newEngine(t)
	e.Start()

	if e.Role() != RoleSales {
		t.Fatalf("initial role: got %s, want %s", e.Role(), RoleSales)
	}
	e.ToggleRole()
	if e.Role() != RoleCustomer {
		t.Errorf("after toggle: got %s, want %s", e.Role(), RoleCustomer)
	}
	e.ToggleRole()
	if e.Role() != RoleSales {
		t.Errorf("after second toggle: got %s, want %s", e.Role(), RoleSales)
	}
}

func TestStartTwiceFullyReinitializes(t *testing.T) {
	e := newEngine(t)
	e.Start()
	e.Next(true)
	e.Next(true)
	e.ToggleRole()
	e.RevealAnswer()

	e.Start()
	if e.Index() != 0 || e.Score() != 0 || e.Answered() != 0 {
		t.Errorf("Start must reset index/score/answered, got %d/%d/%d",
			e.Index(), e.Score(), e.Answered())
	}
	if e.Role() != RoleSales || e.ShowAnswer() {
		t.Error("Start must reset role and reveal flag")
	}
}

func TestEndResetsEverything(t *testing.T) {
	e := newEngine(t)
	e.Start()
	e.Next(true)
	e.End()

	if e.Active() {
		t.Error("engine should be inactive after End")
	}
	if e.Current() != nil {
		t.Error("no current question after End")
	}
	if e.Index() != 0 || e.Score() != 0 || e.Answered() != 0 {
		t.Error("End must reset position and score")
	}
}

func TestNextInactiveIsNoOp(t *testing.T) {
	e := newEngine(t)
	e.Next(true)
	if e.Answered() != 0 {
		t.Error("Next before Start must be a no-op")
	}
}
