package service

import "github.com/HMasataka/rotation/domain/entity"

type Weights struct {
	// Teammate applies to each team that already played together.
	Teammate int
	// Pair applies per ordered pair that ever shared a court.
	Pair int
	// Repeat applies per ordered pair that shared a court in the previous round.
	Repeat int
}

func DefaultWeights() Weights {
	return Weights{
		Teammate: 2,
		Pair:     2,
		Repeat:   16,
	}
}

func NewDefaultEvaluator() entity.Evaluator {
	return NewWeightedEvaluator(DefaultWeights())
}

func NewWeightedEvaluator(w Weights) entity.Evaluator {
	return entity.EvaluatorFunc(func(round entity.Round, history *entity.History) float64 {
		cost := 0
		for _, court := range round {
			cost += w.Teammate * history.Teammates[court[0]][court[1]]
			cost += w.Teammate * history.Teammates[court[2]][court[3]]

			for i, x := range court {
				for j, y := range court {
					if i == j {
						continue
					}
					cost += w.Pair * history.Pairs[x][y]
					if history.Previous != nil {
						cost += w.Repeat * history.RepeatCount(x, y)
					}
				}
			}
		}

		return float64(cost)
	})
}
