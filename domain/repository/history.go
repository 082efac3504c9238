package repository

import "github.com/HMasataka/rotation/domain/entity"

type HistoryRepository interface {
	// Snapshot returns a copy of the history that later Record calls do not alter.
	Snapshot() *entity.History
	// Record folds a finalized round into the history.
	Record(round entity.Round)
}
