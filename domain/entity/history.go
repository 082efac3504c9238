package entity

import "slices"

// History is the cumulative record every round is scored against.
type History struct {
	// Pairs counts how often two players shared a court, as teammates or opponents.
	Pairs [][]int
	// Teammates counts how often two players were on the same team.
	Teammates [][]int
	// Waits counts the rounds each player sat out.
	Waits []int
	// Previous holds the court groups of the last recorded round only.
	Previous []Group
	Rounds   int
}

func NewHistory(totalPlayers int) *History {
	return &History{
		Pairs:     newMatrix(totalPlayers),
		Teammates: newMatrix(totalPlayers),
		Waits:     make([]int, totalPlayers),
	}
}

func newMatrix(n int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}

func (h *History) TotalPlayers() int {
	return len(h.Waits)
}

// RepeatCount reports how many groups of the previous round hold both players.
func (h *History) RepeatCount(a, b PlayerID) int {
	n := 0
	for _, g := range h.Previous {
		if g.Contains(a, b) {
			n++
		}
	}
	return n
}

func (h *History) Clone() *History {
	c := &History{
		Pairs:     make([][]int, len(h.Pairs)),
		Teammates: make([][]int, len(h.Teammates)),
		Waits:     slices.Clone(h.Waits),
		Rounds:    h.Rounds,
	}
	for i := range h.Pairs {
		c.Pairs[i] = slices.Clone(h.Pairs[i])
		c.Teammates[i] = slices.Clone(h.Teammates[i])
	}
	if h.Previous != nil {
		c.Previous = make([]Group, len(h.Previous))
		for i, g := range h.Previous {
			c.Previous[i] = slices.Clone(g)
		}
	}
	return c
}
