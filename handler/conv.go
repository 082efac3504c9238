package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/HMasataka/rotation/domain/entity"
	"github.com/samber/lo"
)

func FormatHeader(schedule *entity.Schedule) string {
	return fmt.Sprintf("# Optimal games for mixing %d players on %d courts.\n", schedule.TotalPlayers, schedule.CourtCount)
}

// FormatRound renders one line: "Round <i>," then "<a>-<b> vs <c>-<d>," per
// court, then "Waiting: " with a trailing space after each id when anyone
// sits out.
func FormatRound(index int, round entity.Round, waiting []entity.PlayerID) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Round %d,", index)
	for _, court := range round {
		b.WriteString(court.String())
		b.WriteString(",")
	}

	if len(waiting) > 0 {
		ids := lo.Map(waiting, func(p entity.PlayerID, _ int) string { return strconv.Itoa(int(p)) })
		b.WriteString("Waiting: ")
		b.WriteString(strings.Join(ids, " "))
		b.WriteString(" ")
	}

	b.WriteString("\n")
	return b.String()
}

func FormatSchedule(schedule *entity.Schedule) string {
	var b strings.Builder

	b.WriteString(FormatHeader(schedule))
	for i, round := range schedule.Rounds {
		b.WriteString(FormatRound(i, round, schedule.Waiting(i)))
	}

	return b.String()
}
