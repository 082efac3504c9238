package service

import (
	"iter"
	"slices"

	"github.com/HMasataka/rotation/domain/entity"
	"github.com/samber/lo"
)

// PartitionService enumerates the ways to split a cohort into courts.
type PartitionService interface {
	Partitions(players []entity.PlayerID) iter.Seq[entity.Partition]
}

type partitionService struct{}

func NewPartitionService() PartitionService {
	return &partitionService{}
}

// Partitions yields every split of players into disjoint groups of
// entity.CourtSize exactly once. The smallest remaining player is always
// placed in the group being built, so reordering courts never repeats a
// partition. Nothing is yielded for an empty cohort.
func (s *partitionService) Partitions(players []entity.PlayerID) iter.Seq[entity.Partition] {
	sorted := slices.Sorted(slices.Values(players))

	return func(yield func(entity.Partition) bool) {
		if len(sorted) == 0 {
			return
		}
		if len(sorted)%entity.CourtSize != 0 {
			panic("cohort size is not a multiple of the court size")
		}
		partitions(sorted, nil, yield)
	}
}

func partitions(players []entity.PlayerID, prefix entity.Partition, yield func(entity.Partition) bool) bool {
	if len(players) == 0 {
		return yield(slices.Clone(prefix))
	}

	anchor, rest := players[0], players[1:]
	for _, mates := range combinations(rest, entity.CourtSize-1) {
		group := append(entity.Group{anchor}, mates...)
		if !partitions(lo.Without(rest, mates...), append(prefix, group), yield) {
			return false
		}
	}

	return true
}

// combinations returns the k-subsets of items in lexicographic order.
func combinations(items []entity.PlayerID, k int) [][]entity.PlayerID {
	if k == 0 {
		return [][]entity.PlayerID{nil}
	}

	var out [][]entity.PlayerID
	for i := 0; i <= len(items)-k; i++ {
		for _, tail := range combinations(items[i+1:], k-1) {
			out = append(out, append([]entity.PlayerID{items[i]}, tail...))
		}
	}
	return out
}
