package tui

import "github.com/charmbracelet/lipgloss"

// palette mirrors the light and dark schemes of the web front end.
type palette struct {
	primary lipgloss.Color
	success lipgloss.Color
	err     lipgloss.Color
	muted   lipgloss.Color
	text    lipgloss.Color
	border  lipgloss.Color
}

var (
	lightPalette = palette{
		primary: lipgloss.Color("#2563EB"),
		success: lipgloss.Color("#16A34A"),
		err:     lipgloss.Color("#DC2626"),
		muted:   lipgloss.Color("#64748B"),
		text:    lipgloss.Color("#0F172A"),
		border:  lipgloss.Color("#CBD5E1"),
	}
	darkPalette = palette{
		primary: lipgloss.Color("#60A5FA"),
		success: lipgloss.Color("#4ADE80"),
		err:     lipgloss.Color("#F87171"),
		muted:   lipgloss.Color("#A1A1AA"),
		text:    lipgloss.Color("#F4F4F5"),
		border:  lipgloss.Color("#3F3F46"),
	}
)

type styles struct {
	logo      lipgloss.Style
	subtitle  lipgloss.Style
	text      lipgloss.Style
	box       lipgloss.Style
	focused   lipgloss.Style
	button    lipgloss.Style
	disabled  lipgloss.Style
	heading   lipgloss.Style
	selected  lipgloss.Style
	copied    lipgloss.Style
	err       lipgloss.Style
	statusBar lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1)

	return styles{
		logo:      lipgloss.NewStyle().Foreground(p.primary).Bold(true),
		subtitle:  lipgloss.NewStyle().Foreground(p.muted),
		text:      lipgloss.NewStyle().Foreground(p.text),
		box:       box,
		focused:   box.BorderForeground(p.primary),
		button:    lipgloss.NewStyle().Foreground(p.primary).Bold(true),
		disabled:  lipgloss.NewStyle().Foreground(p.muted).Faint(true),
		heading:   lipgloss.NewStyle().Foreground(p.text).Bold(true).BorderLeft(true).BorderStyle(lipgloss.ThickBorder()).BorderForeground(p.primary).PaddingLeft(1),
		selected:  lipgloss.NewStyle().Foreground(p.primary).Bold(true),
		copied:    lipgloss.NewStyle().Foreground(p.success).Bold(true),
		err:       lipgloss.NewStyle().Foreground(p.err),
		statusBar: lipgloss.NewStyle().Foreground(p.muted),
	}
}
