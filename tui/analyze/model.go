package analyze

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"emoterm/app"
	"emoterm/infra/editor"
	"emoterm/tui/common"
)

// --- Messages ---

// ResultMsg is sent when an analysis request reaches a terminal state.
// Body carries the response text verbatim (success or server-rendered
// error alike); Err is set only for transport-level failures.
type ResultMsg struct {
	Body string
	Err  error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the state for the analyze view: a text input (the input
// source) and a result area (the output sink).
//
// Requests are deliberately unsynchronized: submitting twice puts two
// requests in flight, and whichever completes last overwrites the
// result. There is no sequence guard and no cancellation.
type Model struct {
	analyzer app.Analyzer
	editor   *editor.EnvEditor
	keys     common.KeyMap

	input   textinput.Model
	spinner spinner.Model

	result   string // Output sink; replaced wholesale by every completion
	errMsg   string // Transport error, if the last completion had one
	inflight int
}

// New creates an analyze model with injected dependencies.
func New(analyzer app.Analyzer, ed *editor.EnvEditor) Model {
	ti := textinput.New()
	ti.Placeholder = "How are you feeling today?"
	ti.CharLimit = 500
	ti.Width = 72
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = common.SpinnerStyle

	return Model{
		analyzer: analyzer,
		editor:   ed,
		keys:     common.DefaultKeyMap(),
		input:    ti,
		spinner:  s,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// analyze issues the request off the update loop. The returned command
// delivers exactly one ResultMsg when the exchange terminates; with no
// client timeout configured, a stalled request never delivers anything
// and the result area keeps its previous content.
func (m Model) analyze(text string) tea.Cmd {
	analyzer := m.analyzer
	return func() tea.Msg {
		body, err := analyzer.Analyze(context.Background(), text)
		return ResultMsg{Body: body, Err: err}
	}
}

// launchEditor uses tea.Exec to suspend the TUI while $EDITOR runs.
func (m *Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd(m.input.Value())
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: fmt.Errorf("preparing editor: %w", err)}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the analyze view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			cmds := []tea.Cmd{m.analyze(m.input.Value())}
			if m.inflight == 0 {
				cmds = append(cmds, m.spinner.Tick)
			}
			m.inflight++
			return m, tea.Batch(cmds...)

		case key.Matches(msg, m.keys.Editor):
			if m.editor == nil {
				return m, nil
			}
			return m, m.launchEditor()

		case key.Matches(msg, m.keys.Clear):
			m.result = ""
			m.errMsg = ""
			return m, nil
		}

		// Delegate to the text input for normal typing.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case ResultMsg:
		if m.inflight > 0 {
			m.inflight--
		}
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		// Last completion wins, whatever its status was.
		m.result = msg.Body
		m.errMsg = ""
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if content == "" {
			return m, nil // Cancelled.
		}
		m.input.SetValue(content)
		cmds := []tea.Cmd{m.analyze(content)}
		if m.inflight == 0 {
			cmds = append(cmds, m.spinner.Tick)
		}
		m.inflight++
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if m.inflight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Result returns the current content of the output sink.
func (m Model) Result() string {
	return m.result
}
