// Package session provides local persistence for sales sessions: a single
// versioned JSON document held by a pluggable storage backend.
package session

import "time"

// StorageVersion is the schema version of the persisted document. A stored
// document with any other version is treated as empty.
const StorageVersion = 1

// Status is the lifecycle state of a session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Outcome is the final disposition of a sales session.
type Outcome string

const (
	OutcomeWon         Outcome = "won"
	OutcomeLost        Outcome = "lost"
	OutcomePending     Outcome = "pending"
	OutcomeNextMeeting Outcome = "next_meeting"
)

// Label returns a display name for the outcome.
func (o Outcome) Label() string {
	switch o {
	case OutcomeWon:
		return "Won"
	case OutcomeLost:
		return "Lost"
	case OutcomePending:
		return "Pending"
	case OutcomeNextMeeting:
		return "Next meeting"
	default:
		return string(o)
	}
}

// Result records the outcome of a completed session.
type Result struct {
	Outcome     Outcome   `json:"outcome"`
	Revenue     float64   `json:"revenue,omitempty"`
	NextAction  string    `json:"nextAction,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

// Session is one tracked run through the script for one prospective deal.
// CheckpointStates maps node id to an ordered boolean array whose length
// equals that node's checkpoint count.
type Session struct {
	ID               string            `json:"id"`
	CompanyName      string            `json:"companyName"`
	ContactPerson    string            `json:"contactPerson,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	Status           Status            `json:"status"`
	CheckpointStates map[string][]bool `json:"checkpointStates"`
	Result           *Result           `json:"result,omitempty"`
	Suggestions      []string          `json:"suggestions,omitempty"`
}

// Summary is a derived, never-persisted view of a session for listings.
type Summary struct {
	ID             string
	CompanyName    string
	CreatedAt      time.Time
	Status         Status
	CompletionRate int // 0-100
	Outcome        Outcome
}

// Progress is a completed/total checkpoint pair for a single node.
type Progress struct {
	Completed int
	Total     int
}

// Patch holds optional field overrides for Store.Update. Nil fields are
// left untouched.
type Patch struct {
	CompanyName   *string
	ContactPerson *string
	Status        *Status
	Result        *Result
	Suggestions   []string
}

// ImportResult reports the outcome of importing a session document.
type ImportResult struct {
	OK    bool
	Count int
	Err   string
}

// document is the on-disk shape of the whole store.
type document struct {
	Version  int       `json:"version"`
	Sessions []Session `json:"sessions"`
}

// completionRate returns the rounded percentage of checked checkpoints
// across every node recorded on the session. 0 when nothing is recorded.
func completionRate(s Session) int {
	total, completed := 0, 0
	for _, states := range s.CheckpointStates {
		total += len(states)
		for _, checked := range states {
			if checked {
				completed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(float64(completed)/float64(total)*100 + 0.5)
}
