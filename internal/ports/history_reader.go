package ports

import "github.com/aalvaropc/romancalc/internal/domain"

// HistoryReader lists recorded sums, newest first. limit <= 0 means all.
type HistoryReader interface {
	ListHistory(limit int) ([]domain.HistoryEntry, error)
}
