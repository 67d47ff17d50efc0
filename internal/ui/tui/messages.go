package tui

import "github.com/aalvaropc/romancalc/internal/domain"

type sumDoneMsg struct {
	sum      domain.Sum
	computed bool // sum is valid, even when err is set
	id       string
	err      error
}

type historyLoadedMsg struct {
	entries []domain.HistoryEntry
	err     error
}
