package usecase

import (
	"github.com/aalvaropc/romancalc/internal/domain"
	"github.com/aalvaropc/romancalc/internal/ports"
)

type ListHistory struct {
	reader ports.HistoryReader
}

func NewListHistory(reader ports.HistoryReader) *ListHistory {
	return &ListHistory{reader: reader}
}

func (uc *ListHistory) Execute(limit int) ([]domain.HistoryEntry, error) {
	if uc.reader == nil {
		return []domain.HistoryEntry{}, nil
	}
	return uc.reader.ListHistory(limit)
}
