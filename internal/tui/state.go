package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"

	"github.com/sozercan/ai-copywriter/internal/session"
)

type focus int

const (
	focusEditor focus = iota
	focusResults
)

type state struct {
	session *session.Session

	// Input
	editor textarea.Model
	tones  []string

	// Results
	focus    focus
	selected int
	notice   string

	spinner spinner.Model
	styles  styles
}

func newState(tones []string, defaultTone string) *state {
	editor := textarea.New()
	editor.Placeholder = "예시)\n안녕하세요.\n이번 주 신규 프로모션 안내드립니다..."
	editor.CharLimit = session.MaxContentLength
	editor.ShowLineNumbers = false
	editor.SetWidth(70)
	editor.SetHeight(8)
	editor.Focus()

	return &state{
		session: session.New(defaultTone),
		editor:  editor,
		tones:   tones,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  newStyles(false),
	}
}

// nextTone cycles through the catalog, starting over after the last tone.
func (s *state) nextTone() string {
	if len(s.tones) == 0 {
		return s.session.Tone()
	}
	current := s.session.Tone()
	for i, t := range s.tones {
		if t == current {
			return s.tones[(i+1)%len(s.tones)]
		}
	}
	return s.tones[0]
}
