// Package tui is the terminal front end of the copywriter.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sozercan/ai-copywriter/apimodels"
	"github.com/sozercan/ai-copywriter/internal/config"
	"github.com/sozercan/ai-copywriter/internal/session"
)

const toneTimeout = 5 * time.Second

// API is the part of the HTTP client the app needs.
type API interface {
	Generate(ctx context.Context, req apimodels.GenerateRequest) (*apimodels.GenerateResponse, error)
	Tones(ctx context.Context) (*apimodels.TonesResponse, error)
}

type App struct {
	width    int
	height   int
	state    *state
	api      API
	copyFn   func(string) error
	quitting bool
}

func NewApp(api API) *App {
	return &App{
		state:  newState(config.DefaultTones, config.DefaultTone),
		api:    api,
		copyFn: clipboard.WriteAll,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.WindowSize(),
		textarea.Blink,
		a.loadTones(),
	)
}

func (a *App) loadTones() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), toneTimeout)
		defer cancel()

		resp, err := a.api.Tones(ctx)
		if err != nil {
			return tonesErrorMsg{err}
		}
		return tonesLoadedMsg{resp}
	}
}

func (a *App) generate(req apimodels.GenerateRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := a.api.Generate(context.Background(), req)
		if err != nil {
			return generatedMsg{err: err}
		}
		return generatedMsg{titles: resp.Titles}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return a, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.state.editor.SetWidth(min(70, max(20, msg.Width-8)))

	case tonesLoadedMsg:
		if len(msg.resp.Tones) > 0 {
			a.state.tones = msg.resp.Tones
			if a.state.session.Tone() == config.DefaultTone && msg.resp.Default != "" {
				a.state.session.SetTone(msg.resp.Default)
			}
		}
		return a, nil

	case tonesErrorMsg:
		// The built-in catalog stays in place.
		return a, nil

	case generatedMsg:
		_ = a.state.session.Resolve(msg.titles, msg.err)
		a.state.selected = 0
		if a.state.session.Phase() == session.PhaseSuccess {
			a.state.focus = focusResults
			a.state.editor.Blur()
		}
		return a, nil

	case copyExpiredMsg:
		return a, nil

	case spinner.TickMsg:
		if a.state.session.Phase() != session.PhaseSubmitting {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd
	}

	if a.state.focus == focusEditor {
		var cmd tea.Cmd
		a.state.editor, cmd = a.state.editor.Update(msg)
		a.state.session.SetContent(a.state.editor.Value())
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// handleKey reports whether the key was consumed; unconsumed keys reach
// the editor.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Generate):
		return a.submit(), true

	case key.Matches(msg, keys.RegenerateAll):
		if len(a.state.session.Titles()) == 0 {
			return nil, true
		}
		return a.submit(), true

	case key.Matches(msg, keys.Focus):
		a.toggleFocus()
		return nil, true

	case key.Matches(msg, keys.Tone):
		a.state.session.SetTone(a.state.nextTone())
		return nil, true

	case key.Matches(msg, keys.Theme):
		a.state.styles = newStyles(a.state.session.ToggleDarkMode())
		return nil, true
	}

	if a.state.focus != focusResults {
		return nil, false
	}

	titles := a.state.session.Titles()
	switch {
	case key.Matches(msg, keys.Up):
		if a.state.selected > 0 {
			a.state.selected--
		}
	case key.Matches(msg, keys.Down):
		if a.state.selected < len(titles)-1 {
			a.state.selected++
		}
	case key.Matches(msg, keys.Copy):
		return a.copySelected(), true
	case key.Matches(msg, keys.Regenerate):
		_ = a.state.session.RegenerateOne(a.state.selected)
	}
	return nil, true
}

func (a *App) submit() tea.Cmd {
	req, err := a.state.session.Submit()
	if err != nil {
		return nil
	}
	a.state.notice = ""
	return tea.Batch(a.state.spinner.Tick, a.generate(req))
}

func (a *App) toggleFocus() {
	if a.state.focus == focusEditor && len(a.state.session.Titles()) > 0 {
		a.state.focus = focusResults
		a.state.editor.Blur()
		return
	}
	a.state.focus = focusEditor
	a.state.editor.Focus()
}

func (a *App) copySelected() tea.Cmd {
	text, err := a.state.session.Copy(a.state.selected)
	if err != nil {
		return nil
	}
	if err := a.copyFn(text); err != nil {
		a.state.notice = "클립보드에 복사하지 못했습니다: " + err.Error()
		return nil
	}
	a.state.notice = ""
	return tea.Tick(session.CopyFeedbackDuration, func(time.Time) tea.Msg {
		return copyExpiredMsg{}
	})
}

type tonesLoadedMsg struct{ resp *apimodels.TonesResponse }
type tonesErrorMsg struct{ error }
type copyExpiredMsg struct{}

type generatedMsg struct {
	titles []string
	err    error
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	return a.renderMain()
}
