// Package practice implements the quiz engine: an endless loop over the
// catalog's Q&A pairs in one fixed random order, with self-reported scoring.
package practice

import (
	"math/rand"

	"github.com/salesflow-dev/salesflow/internal/catalog"
)

// Role is which side of the conversation the user is drilling. It only
// changes how a question is framed, never the data behind it.
type Role string

const (
	RoleSales    Role = "sales"
	RoleCustomer Role = "customer"
)

// Engine cycles through a shuffled list of Q&A pairs. The shuffle is drawn
// once per practice run and stays fixed until End or the next Start.
type Engine struct {
	catalog *catalog.Catalog
	rng     *rand.Rand

	active     bool
	role       Role
	questions  []catalog.QA
	index      int
	showAnswer bool
	score      int
	answered   int
}

// New creates an Engine over the catalog. seed fixes the shuffle order for
// tests; pass 0 to shuffle differently on every run.
func New(cat *catalog.Catalog, seed int64) *Engine {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	return &Engine{catalog: cat, rng: rng, role: RoleSales}
}

// Active reports whether a practice run is in progress.
func (e *Engine) Active() bool { return e.active }

// Role returns the current drilling role.
func (e *Engine) Role() Role { return e.role }

// Index returns the position within the shuffled question list.
func (e *Engine) Index() int { return e.index }

// ShowAnswer reports whether the current answer is revealed.
func (e *Engine) ShowAnswer() bool { return e.showAnswer }

// Score returns the self-reported correct count.
func (e *Engine) Score() int { return e.score }

// Answered returns how many questions have been answered this run.
func (e *Engine) Answered() int { return e.answered }

// TotalQuestions returns the size of the question pool.
func (e *Engine) TotalQuestions() int { return len(e.questions) }

// Current returns the question at the current position, or nil when the
// pool is empty or practice is inactive.
func (e *Engine) Current() *catalog.QA {
	if !e.active || len(e.questions) == 0 {
		return nil
	}
	return &e.questions[e.index]
}

// Start begins a practice run, fully reinitializing state: role, position,
// reveal flag, and score all reset, and a fresh shuffle is drawn.
func (e *Engine) Start() {
	e.questions = e.shuffled(e.catalog.AllQA())
	e.active = true
	e.role = RoleSales
	e.index = 0
	e.showAnswer = false
	e.score = 0
	e.answered = 0
}

// End stops practice and resets all state. Practice has no paused or
// resumable form.
func (e *Engine) End() {
	e.active = false
	e.role = RoleSales
	e.questions = nil
	e.index = 0
	e.showAnswer = false
	e.score = 0
	e.answered = 0
}

// ToggleRole flips between sales and customer without touching the
// question order or position.
func (e *Engine) ToggleRole() {
	if e.role == RoleSales {
		e.role = RoleCustomer
	} else {
		e.role = RoleSales
	}
}

// RevealAnswer exposes the current answer. It changes nothing else.
func (e *Engine) RevealAnswer() {
	e.showAnswer = true
}

// Next records whether the user judged themselves correct, then advances to
// the next question, wrapping past the end. The reveal flag is cleared.
func (e *Engine) Next(wasCorrect bool) {
	if !e.active || len(e.questions) == 0 {
		return
	}
	e.index++
	if e.index >= len(e.questions) {
		e.index = 0
	}
	e.showAnswer = false
	e.answered++
	if wasCorrect {
		e.score++
	}
}

// ResetScore clears the score counters without moving the position or
// reshuffling.
func (e *Engine) ResetScore() {
	e.score = 0
	e.answered = 0
}

func (e *Engine) shuffled(pool []catalog.QA) []catalog.QA {
	out := make([]catalog.QA, len(pool))
	copy(out, pool)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if e.rng != nil {
		e.rng.Shuffle(len(out), swap)
	} else {
		rand.Shuffle(len(out), swap)
	}
	return out
}
