package repository

type RepositoryContainer struct {
	HistoryRepository HistoryRepository
}
