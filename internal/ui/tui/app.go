package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/romancalc/internal/domain"
)

const (
	fieldAugend = iota
	fieldAddend
	fieldCount
)

type model struct {
	theme Theme
	deps  Deps

	inputs [fieldCount]textinput.Model
	focus  int

	busy   bool
	last   *domain.Sum
	lastID string
	toast  string

	history []domain.HistoryEntry
	width   int
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	m := model{
		theme: DefaultTheme(),
		deps:  deps,
	}

	labels := [fieldCount]string{"Augend", "Addend"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("%-7s ", labels[i]+":")
		ti.Placeholder = "e.g. " + strings.Repeat("I", i+1)
		m.inputs[i] = ti
	}
	m.inputs[fieldAugend].Focus()

	if deps.InitialErr != nil {
		m.toast = userMessage(deps.InitialErr)
		if deps.Logger != nil {
			deps.Logger.Error("tui.workspace.unusable", "err", deps.InitialErr)
		}
	}

	return m
}

func (m model) Init() tea.Cmd {
	if c := cmdLoadHistory(m.deps); c != nil {
		return tea.Batch(textinput.Blink, c)
	}
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case sumDoneMsg:
		m.busy = false
		m.toast = userMessage(msg.err)
		if msg.err != nil && m.deps.Logger != nil {
			m.deps.Logger.Error("tui.add.failed", "err", msg.err)
		}
		// A recording failure still carries the computed sum.
		if msg.computed {
			s := msg.sum
			m.last = &s
		}
		m.lastID = msg.id
		if msg.id != "" {
			return m, cmdLoadHistory(m.deps)
		}
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.history = msg.entries
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)

		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

		case "enter":
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.toast = ""
			return m, cmdAdd(m.deps, m.inputs[fieldAugend].Value(), m.inputs[fieldAddend].Value())

		case "ctrl+r":
			for i := range m.inputs {
				m.inputs[i].Reset()
			}
			m.last = nil
			m.lastID = ""
			m.toast = ""
			return m, m.setFocus(fieldAugend)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("romancalc") + "\n" +
		m.theme.Subtitle.Render("Adds Roman numerals by writing them side by side") + "\n"

	if m.deps.WorkspaceRoot != "" {
		header += m.theme.Help.Render("Workspace: "+m.deps.WorkspaceRoot) + "\n"
	}
	if m.deps.Debug && m.deps.LogPath != "" {
		header += m.theme.Help.Render("Log: "+m.deps.LogPath) + "\n"
	}

	var b strings.Builder
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(m.theme.Help.Render("adding…"))
	case m.last != nil:
		b.WriteString(fmt.Sprintf("%s + %s = %s",
			orEmpty(string(m.last.Augend)),
			orEmpty(string(m.last.Addend)),
			m.theme.Result.Render(orEmpty(string(m.last.Result))),
		))
		if m.lastID != "" {
			b.WriteString("\n" + m.theme.Help.Render("saved as "+m.lastID))
		}
	default:
		b.WriteString(m.theme.Help.Render("enter to add"))
	}

	if m.toast != "" {
		b.WriteString("\n\n" + m.theme.Toast.Render(m.toast))
	}

	out := header + "\n" + m.theme.Card.Render(b.String())

	if m.deps.History != nil {
		out += "\n\n" + m.renderHistory()
	}

	help := m.theme.Help.Render("tab/↑/↓ switch field • enter add • ctrl+r clear • esc quit")
	return wrap.Render(out + "\n" + help)
}

func (m model) renderHistory() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Recent"))
	b.WriteString("\n")
	if len(m.history) == 0 {
		b.WriteString(m.theme.Help.Render("(no sums recorded yet)"))
		return b.String()
	}
	for _, e := range m.history {
		b.WriteString(fmt.Sprintf("- %s + %s = %s\n",
			clampString(orEmpty(string(e.Augend)), 20),
			clampString(orEmpty(string(e.Addend)), 20),
			clampString(orEmpty(string(e.Result)), 40),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}
