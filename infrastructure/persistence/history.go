package persistence

import (
	"github.com/HMasataka/rotation/domain/entity"
	"github.com/HMasataka/rotation/domain/repository"
	"github.com/samber/lo"
)

// historyRepository keeps the history in process memory for the lifetime of one run.
type historyRepository struct {
	history *entity.History
}

func NewHistoryRepository(totalPlayers int) repository.HistoryRepository {
	return &historyRepository{
		history: entity.NewHistory(totalPlayers),
	}
}

func (r *historyRepository) Snapshot() *entity.History {
	return r.history.Clone()
}

func (r *historyRepository) Record(round entity.Round) {
	players := round.Players()
	if len(lo.Uniq(players)) != len(players) {
		panic("player assigned to more than one court position in a round")
	}

	h := r.history
	for _, court := range round {
		for i := 0; i < entity.CourtSize; i++ {
			for j := i + 1; j < entity.CourtSize; j++ {
				a, b := court[i], court[j]
				h.Pairs[a][b]++
				h.Pairs[b][a]++
			}
		}

		for _, team := range [][2]entity.PlayerID{court.TeamA(), court.TeamB()} {
			h.Teammates[team[0]][team[1]]++
			h.Teammates[team[1]][team[0]]++
		}
	}

	playing := lo.SliceToMap(players, func(p entity.PlayerID) (entity.PlayerID, struct{}) { return p, struct{}{} })
	for p := range h.Waits {
		if _, ok := playing[entity.PlayerID(p)]; !ok {
			h.Waits[p]++
		}
	}

	h.Previous = round.Groups()
	h.Rounds++
}
