package service

import (
	"iter"

	"github.com/HMasataka/rotation/domain/entity"
)

// splits lists the three ways to divide a court group into two teams.
var splits = [...][entity.CourtSize]int{
	{0, 1, 2, 3},
	{0, 2, 1, 3},
	{0, 3, 1, 2},
}

// TeamService enumerates the team splits of a partition.
type TeamService interface {
	Rounds(partition entity.Partition) iter.Seq[entity.Round]
}

type teamService struct{}

func NewTeamService() TeamService {
	return &teamService{}
}

// Rounds yields len(splits)^len(partition) rounds, the first court varying
// slowest.
func (s *teamService) Rounds(partition entity.Partition) iter.Seq[entity.Round] {
	return func(yield func(entity.Round) bool) {
		if len(partition) == 0 {
			return
		}
		for _, group := range partition {
			if len(group) != entity.CourtSize {
				panic("court group does not hold exactly four players")
			}
		}

		choice := make([]int, len(partition))
		for {
			round := make(entity.Round, len(partition))
			for i, group := range partition {
				split := splits[choice[i]]
				round[i] = entity.Court{group[split[0]], group[split[1]], group[split[2]], group[split[3]]}
			}
			if !yield(round) {
				return
			}

			i := len(choice) - 1
			for ; i >= 0; i-- {
				choice[i]++
				if choice[i] < len(splits) {
					break
				}
				choice[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}
