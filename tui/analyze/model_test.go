package analyze

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeAnalyzer struct {
	body string
	err  error
	got  string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, text string) (string, error) {
	f.got = text
	return f.body, f.err
}

func typed(m Model, s string) Model {
	m.input.SetValue(s)
	return m
}

func TestAnalyzeCmd_DeliversExactlyOneResult(t *testing.T) {
	fa := &fakeAnalyzer{body: "happy"}
	m := New(fa, nil)

	cmd := m.analyze("I am happy")
	msg := cmd()

	res, ok := msg.(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg, got %T", msg)
	}
	if res.Body != "happy" || res.Err != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	if fa.got != "I am happy" {
		t.Fatalf("analyzer received %q", fa.got)
	}
}

func TestSubmit_IssuesRequestAndMarksInFlight(t *testing.T) {
	m := New(&fakeAnalyzer{body: "ok"}, nil)
	m = typed(m, "some text")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("submit must produce a command")
	}
	if m.inflight != 1 {
		t.Fatalf("expected one request in flight, got %d", m.inflight)
	}
	// The input keeps its value; the original page never cleared it either.
	if m.input.Value() != "some text" {
		t.Fatalf("input must be preserved: %q", m.input.Value())
	}
}

func TestResult_OverwritesOutputSink(t *testing.T) {
	m := New(&fakeAnalyzer{}, nil)
	m.result = "previous content"
	m.inflight = 1

	m, _ = m.Update(ResultMsg{Body: "happy"})
	if m.Result() != "happy" {
		t.Fatalf("result must be replaced verbatim: %q", m.Result())
	}
	if m.inflight != 0 {
		t.Fatalf("completion must settle the in-flight count")
	}
}

func TestResult_ErrorBodyDisplaysLikeSuccess(t *testing.T) {
	// A 500 with a body arrives as a plain ResultMsg: no status branching.
	m := New(&fakeAnalyzer{}, nil)
	m.inflight = 1

	m, _ = m.Update(ResultMsg{Body: "Error: invalid input"})
	if m.Result() != "Error: invalid input" {
		t.Fatalf("error bodies must display verbatim: %q", m.Result())
	}
}

func TestConcurrentInvocations_LastCompletionWins(t *testing.T) {
	m := New(&fakeAnalyzer{}, nil)
	m = typed(m, "first")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typed(m, "second")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.inflight != 2 {
		t.Fatalf("expected two independent requests in flight, got %d", m.inflight)
	}

	// Completions race: here the first-issued request finishes last.
	m, _ = m.Update(ResultMsg{Body: "second response"})
	m, _ = m.Update(ResultMsg{Body: "first response"})
	if m.Result() != "first response" {
		t.Fatalf("last completion must win: %q", m.Result())
	}
}

func TestNoCompletion_LeavesOutputSinkUntouched(t *testing.T) {
	m := New(&fakeAnalyzer{}, nil)
	m.result = "stale but visible"
	m = typed(m, "hello?")

	// The request never terminates: no ResultMsg ever arrives.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Result() != "stale but visible" {
		t.Fatalf("pending request must not touch the sink: %q", m.Result())
	}
}

func TestTransportError_ShowsInStatusNotSink(t *testing.T) {
	m := New(&fakeAnalyzer{}, nil)
	m.result = "kept"
	m.inflight = 1

	m, _ = m.Update(ResultMsg{Err: errors.New("connection refused")})
	if m.Result() != "kept" {
		t.Fatalf("transport failure must not clear the sink: %q", m.Result())
	}
	if m.errMsg == "" {
		t.Fatalf("transport failure must surface in the status line")
	}
}

func TestClear_EmptiesOutputSink(t *testing.T) {
	m := New(&fakeAnalyzer{}, nil)
	m.result = "old"
	m.errMsg = "older"

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.Result() != "" || m.errMsg != "" {
		t.Fatalf("clear must empty the sink and the status line")
	}
}

func TestEmptyInput_StillSubmits(t *testing.T) {
	fa := &fakeAnalyzer{body: "Invalid text! Please try again!"}
	m := New(fa, nil)

	cmd := m.analyze("")
	msg := cmd()
	res := msg.(ResultMsg)
	if res.Err != nil {
		t.Fatalf("empty input must not error synchronously: %v", res.Err)
	}
	if fa.got != "" {
		t.Fatalf("empty input must be sent as-is, got %q", fa.got)
	}
}

func TestView_RendersResultAndHelp(t *testing.T) {
	m := New(&fakeAnalyzer{}, nil)
	m.result = "The dominant emotion is joy."

	out := m.View()
	if !strings.Contains(out, "The dominant emotion is joy.") {
		t.Fatalf("view must render the result:\n%s", out)
	}
	if !strings.Contains(out, "enter: analyze") {
		t.Fatalf("view must render the help line:\n%s", out)
	}
}
