package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sozercan/ai-copywriter/internal/session"
)

func (a *App) renderMain() string {
	var b strings.Builder
	st := a.state.styles

	// Header
	theme := "☾ 다크 모드"
	if a.state.session.DarkMode() {
		theme = "☀ 라이트 모드"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		st.logo.Render("✦ AI 카피라이터"),
		"   ",
		st.subtitle.Render(theme),
	)
	b.WriteString(a.center(header))
	b.WriteString("\n\n")

	b.WriteString(a.center(st.text.Bold(true).Render("이메일 내용을 입력하세요")))
	b.WriteString("\n")
	b.WriteString(a.center(st.subtitle.Render("본문을 분석해 클릭을 부르는 제목 3가지를 만들어 드립니다.")))
	b.WriteString("\n\n")

	b.WriteString(a.center(a.renderEditor()))
	b.WriteString("\n")

	tone := st.subtitle.Render("제목 톤: ") + st.text.Render(a.state.session.Tone())
	b.WriteString(a.center(tone))
	b.WriteString("\n\n")

	b.WriteString(a.center(a.renderButton()))
	b.WriteString("\n")

	if msg := a.state.session.Message(); msg != "" && a.state.session.Phase() == session.PhaseFailure {
		b.WriteString("\n")
		b.WriteString(a.center(st.err.Render(msg)))
		b.WriteString("\n")
	}
	if a.state.notice != "" {
		b.WriteString("\n")
		b.WriteString(a.center(st.err.Render(a.state.notice)))
		b.WriteString("\n")
	}

	if results := a.renderResults(); results != "" {
		b.WriteString("\n")
		b.WriteString(a.center(results))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.center(st.statusBar.Render(a.statusLine())))

	return a.centerVertically(b.String())
}

func (a *App) renderEditor() string {
	st := a.state.styles
	counter := st.subtitle.Render(fmt.Sprintf("%d / %d자", a.state.session.ContentLength(), session.MaxContentLength))

	box := st.box
	if a.state.focus == focusEditor {
		box = st.focused
	}
	return lipgloss.JoinVertical(lipgloss.Right, box.Render(a.state.editor.View()), counter)
}

func (a *App) renderButton() string {
	st := a.state.styles
	s := a.state.session

	switch {
	case s.Phase() == session.PhaseSubmitting:
		return st.button.Render(a.state.spinner.View() + " 생성 중입니다...")
	case s.CanSubmit():
		return st.button.Render("✦ 제목 3가지 생성하기  [ctrl+s]")
	default:
		return st.disabled.Render("✦ 제목 3가지 생성하기  (최소 10자)")
	}
}

func (a *App) renderResults() string {
	st := a.state.styles
	titles := a.state.session.Titles()
	if len(titles) == 0 {
		return ""
	}

	copied := a.state.session.CopiedIndex()
	lines := []string{st.heading.Render("✍ 추천 제목"), ""}
	for i, title := range titles {
		marker := "  "
		style := st.text
		if a.state.focus == focusResults && i == a.state.selected {
			marker = "> "
			style = st.selected
		}
		line := marker + style.Render(title)
		if i == copied {
			line += "  " + st.copied.Render("✓ 복사 완료!")
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", st.subtitle.Render("↻ 다른 제목 다시 받기  [ctrl+r]"))

	box := st.box
	if a.state.focus == focusResults {
		box = st.focused
	}
	return box.Width(min(74, max(30, a.width-4))).Render(strings.Join(lines, "\n"))
}

func (a *App) statusLine() string {
	if a.state.focus == focusResults {
		return "[↑/↓] Select  [c] Copy  [r] Regenerate  [ctrl+r] All  [tab] Edit  [ctrl+d] Theme  [esc] Quit"
	}
	return "[ctrl+s] Generate  [ctrl+t] Tone  [tab] Results  [ctrl+d] Theme  [esc] Quit"
}

func (a *App) center(s string) string {
	if a.width == 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, s)
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
