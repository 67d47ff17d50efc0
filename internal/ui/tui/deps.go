package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/romancalc/internal/domain"
)

// Adder computes (and possibly records) a sum.
type Adder interface {
	Execute(ctx context.Context, augend, addend domain.Numeral) (domain.Sum, string, error)
}

// HistoryLister lists recorded sums, newest first.
type HistoryLister interface {
	Execute(limit int) ([]domain.HistoryEntry, error)
}

type Deps struct {
	Adder   Adder
	History HistoryLister // optional; nil hides the history panel

	WorkspaceRoot string

	Logger  *slog.Logger
	LogPath string
	Debug   bool // shows LogPath in the header

	// InitialErr is shown as a toast on the first frame, e.g. a workspace
	// whose config could not be loaded.
	InitialErr error
}
