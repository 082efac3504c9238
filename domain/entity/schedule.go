package entity

import (
	"github.com/rs/xid"
	"github.com/samber/lo"
)

type Schedule struct {
	ID           string
	TotalPlayers int
	CourtCount   int
	UsedCourts   int
	Rounds       []Round
}

func NewSchedule(totalPlayers, courtCount int) *Schedule {
	return &Schedule{
		ID:           xid.New().String(),
		TotalPlayers: totalPlayers,
		CourtCount:   courtCount,
		UsedCourts:   UsedCourts(totalPlayers, courtCount),
	}
}

// UsedCourts is the number of courts that can be filled with the given players.
func UsedCourts(totalPlayers, courtCount int) int {
	return min(totalPlayers/CourtSize, courtCount)
}

// Waiting lists, in ascending order, the players absent from every court of the round.
func (s *Schedule) Waiting(index int) []PlayerID {
	playing := s.Rounds[index].Players()
	all := lo.Map(lo.Range(s.TotalPlayers), func(i int, _ int) PlayerID { return PlayerID(i) })
	return lo.Without(all, playing...)
}
