package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/romancalc/internal/domain"
	"github.com/aalvaropc/romancalc/internal/usecase"
)

const (
	addTimeout   = 5 * time.Second
	historyLimit = 5
)

func cmdAdd(deps Deps, augend, addend string) tea.Cmd {
	return func() tea.Msg {
		if deps.Adder == nil {
			return sumDoneMsg{err: errors.New("adder is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), addTimeout)
		defer cancel()

		sum, id, err := deps.Adder.Execute(ctx, domain.Numeral(augend), domain.Numeral(addend))
		return sumDoneMsg{
			sum:      sum,
			computed: err == nil || errors.Is(err, usecase.ErrNotRecorded),
			id:       id,
			err:      err,
		}
	}
}

func cmdLoadHistory(deps Deps) tea.Cmd {
	if deps.History == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := deps.History.Execute(historyLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}
