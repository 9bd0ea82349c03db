// Package suggest computes coaching suggestions from a finished or
// in-progress session snapshot. Pure and deterministic: identical input
// yields identical output, in a fixed order.
package suggest

import (
	"fmt"

	"github.com/salesflow-dev/salesflow/internal/catalog"
	"github.com/salesflow-dev/salesflow/internal/session"
)

// Rate thresholds. A phase below lowPhaseRate gets a generic warning; the
// hearing phase has its own stricter bar, and the proposal phase is
// reviewed on a loss.
const (
	lowPhaseRate     = 50
	hearingMinRate   = 70
	proposalLossRate = 80
)

// PhaseCompletion returns the completed/total checkpoint counts and the
// rounded completion rate for one phase of the session. A phase with no
// recorded checkpoints is vacuously complete (rate 100).
func PhaseCompletion(cat *catalog.Catalog, sess session.Session, phase catalog.Phase) (completed, total, rate int) {
	for _, node := range cat.NodesInPhase(phase) {
		states, ok := sess.CheckpointStates[node.ID]
		if !ok {
			continue
		}
		total += len(states)
		for _, checked := range states {
			if checked {
				completed++
			}
		}
	}
	if total == 0 {
		return completed, total, 100
	}
	return completed, total, roundRate(completed, total)
}

// OverallCompletion returns the rounded completion rate across every
// recorded checkpoint on the session, 0 when none are recorded.
func OverallCompletion(sess session.Session) int {
	total, completed := 0, 0
	for _, states := range sess.CheckpointStates {
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
	return roundRate(completed, total)
}

func roundRate(completed, total int) int {
	return int(float64(completed)/float64(total)*100 + 0.5)
}

// Generate produces the ordered suggestion list for a session snapshot:
// phase warnings in phase order, the hearing reminder, outcome-specific
// messages, then exactly one overall-rate message.
func Generate(cat *catalog.Catalog, sess session.Session) []string {
	var suggestions []string

	for _, phase := range catalog.Phases {
		_, _, rate := PhaseCompletion(cat, sess, phase)
		if rate < lowPhaseRate {
			suggestions = append(suggestions, fmt.Sprintf(
				"The %s phase checklist is only %d%% complete. Strengthen your preparation there.",
				phase.Label(), rate))
		}
	}

	_, _, hearingRate := PhaseCompletion(cat, sess, catalog.PhaseHearing)
	if hearingRate < hearingMinRate {
		suggestions = append(suggestions,
			"Hearing coverage was on the low side. Prepare a question list in advance so nothing gets missed.")
	}

	var outcome session.Outcome
	if sess.Result != nil {
		outcome = sess.Result.Outcome
	}

	switch outcome {
	case session.OutcomeLost:
		_, _, proposalRate := PhaseCompletion(cat, sess, catalog.PhaseProposal)
		if proposalRate < proposalLossRate {
			suggestions = append(suggestions,
				"Some proposal-phase checks were left incomplete. Consider reworking the proposal content.")
		}
		suggestions = append(suggestions,
			"Loss analysis: look back for gaps between what you heard and what you proposed.")
		suggestions = append(suggestions,
			"In the next meeting, make the differentiators against competitors more explicit.")

	case session.OutcomePending, session.OutcomeNextMeeting:
		suggestions = append(suggestions,
			"Don't miss the follow-up window: lock in a date for the next action.")

	case session.OutcomeWon:
		suggestions = append(suggestions,
			"Congratulations on the win! Record the success factors to reuse in future deals.")
	}

	overall := OverallCompletion(sess)
	switch {
	case overall >= 90:
		suggestions = append(suggestions, fmt.Sprintf(
			"Overall checklist completion %d%%. You worked the script thoroughly — keep it up.", overall))
	case overall >= 70:
		suggestions = append(suggestions, fmt.Sprintf(
			"Overall checklist completion %d%%. Almost there — review the unchecked items.", overall))
	default:
		suggestions = append(suggestions, fmt.Sprintf(
			"Overall checklist completion %d%%. Work through each step of the script more deliberately.", overall))
	}

	return suggestions
}
