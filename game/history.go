package game

import "fmt"

// History is the append-only sequence of actions one agent has played
// in the current match. It lives for exactly one match and is
// discarded afterwards.
type History struct {
	actions []Action
}

// NewHistory returns an empty history with capacity for a typical
// match length.
func NewHistory(capacityHint int) *History {
	return &History{actions: make([]Action, 0, capacityHint)}
}

// Append records the action chosen this round.
func (h *History) Append(a Action) {
	h.actions = append(h.actions, a)
}

// View returns a read-only view of the rounds recorded so far.
func (h *History) View() HistoryView {
	return HistoryView{actions: h.actions}
}

// HistoryView is the read-only window a strategy observes. At round n
// it has length exactly n: the current round's actions are never
// visible.
type HistoryView struct {
	actions []Action
}

// Len returns the number of completed rounds visible.
func (v HistoryView) Len() int {
	return len(v.actions)
}

// At returns the action played in round i. Reading outside the
// recorded range is a defect in the calling strategy and panics rather
// than being masked by a default action.
func (v HistoryView) At(i int) Action {
	if i < 0 || i >= len(v.actions) {
		panic(fmt.Sprintf("game: history read out of range: round %d with %d rounds recorded", i, len(v.actions)))
	}
	return v.actions[i]
}

// Last returns the most recent action. Panics on an empty history.
func (v HistoryView) Last() Action {
	return v.At(len(v.actions) - 1)
}

// Defections counts the defect plays recorded so far.
func (v HistoryView) Defections() int {
	n := 0
	for _, a := range v.actions {
		if a == Defect {
			n++
		}
	}
	return n
}

// Cooperations counts the cooperate plays recorded so far.
func (v HistoryView) Cooperations() int {
	return len(v.actions) - v.Defections()
}
