package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"emoterm/app"
	"emoterm/infra/editor"
	"emoterm/tui/analyze"
	"emoterm/tui/common"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Analyzer app.Analyzer
	Editor   *editor.EnvEditor
}

// App is the root Bubble Tea model. It owns global key handling and
// delegates everything else to the analyze view.
type App struct {
	analyze analyze.Model
	keys    common.KeyMap
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		analyze: analyze.New(deps.Analyzer, deps.Editor),
		keys:    common.DefaultKeyMap(),
	}
}

// Init delegates to the analyze view.
func (a App) Init() tea.Cmd {
	return a.analyze.Init()
}

// Update handles global bindings and routes the rest to the analyze view.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
	}

	updated, cmd := a.analyze.Update(msg)
	a.analyze = updated
	return a, cmd
}

// View renders the analyze view.
func (a App) View() string {
	return a.analyze.View()
}
