package handler

import (
	"testing"

	"github.com/HMasataka/rotation/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestFormatRound(t *testing.T) {
	cases := []struct {
		name    string
		index   int
		round   entity.Round
		waiting []entity.PlayerID
		want    string
	}{
		{
			name:  "everyone plays",
			index: 0,
			round: entity.Round{{0, 1, 2, 3}, {4, 5, 6, 7}},
			want:  "Round 0,0-1 vs 2-3,4-5 vs 6-7,\n",
		},
		{
			name:    "some wait",
			index:   3,
			round:   entity.Round{{9, 2, 4, 0}},
			waiting: []entity.PlayerID{1, 3},
			want:    "Round 3,9-2 vs 4-0,Waiting: 1 3 \n",
		},
		{
			name:    "no court",
			index:   10,
			waiting: []entity.PlayerID{0, 1, 2},
			want:    "Round 10,Waiting: 0 1 2 \n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatRound(tc.index, tc.round, tc.waiting))
		})
	}
}

func TestFormatSchedule(t *testing.T) {
	schedule := entity.NewSchedule(10, 3)
	schedule.Rounds = []entity.Round{
		entity.DefaultRound(2),
		{{8, 0, 9, 4}, {1, 5, 2, 6}},
	}

	want := "# Optimal games for mixing 10 players on 3 courts.\n" +
		"Round 0,0-1 vs 2-3,4-5 vs 6-7,Waiting: 8 9 \n" +
		"Round 1,8-0 vs 9-4,1-5 vs 2-6,Waiting: 3 7 \n"

	assert.Equal(t, want, FormatSchedule(schedule))
}
