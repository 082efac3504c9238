package entity

import (
	"fmt"
	"slices"
)

// CourtSize is the number of players sharing one court.
const CourtSize = 4

type PlayerID int

// Court is [a, b, c, d], meaning team {a, b} against team {c, d}.
type Court [CourtSize]PlayerID

func (c Court) TeamA() [2]PlayerID {
	return [2]PlayerID{c[0], c[1]}
}

func (c Court) TeamB() [2]PlayerID {
	return [2]PlayerID{c[2], c[3]}
}

// Group returns the players of the court as an unordered, sorted group.
func (c Court) Group() Group {
	g := slices.Clone(Group(c[:]))
	slices.Sort(g)
	return g
}

func (c Court) String() string {
	return fmt.Sprintf("%d-%d vs %d-%d", c[0], c[1], c[2], c[3])
}

// Group is the unordered set of players placed on one court, kept sorted.
type Group []PlayerID

func (g Group) Contains(a, b PlayerID) bool {
	return slices.Contains(g, a) && slices.Contains(g, b)
}

// Partition splits a cohort into disjoint court groups.
type Partition []Group

// Round holds the simultaneous courts of one timeslot.
type Round []Court

func (r Round) Players() []PlayerID {
	players := make([]PlayerID, 0, len(r)*CourtSize)
	for _, court := range r {
		players = append(players, court[:]...)
	}
	return players
}

func (r Round) Groups() []Group {
	groups := make([]Group, len(r))
	for i, court := range r {
		groups[i] = court.Group()
	}
	return groups
}

// DefaultRound places players on courts in ascending index order.
func DefaultRound(usedCourts int) Round {
	round := make(Round, usedCourts)
	for i := range round {
		first := PlayerID(i * CourtSize)
		round[i] = Court{first, first + 1, first + 2, first + 3}
	}
	return round
}
