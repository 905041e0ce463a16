// Package styles provides shared lipgloss v2 styles for CLI and TUI output.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

var (
	ColorPrimary    color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	DoneTextStyle      lipgloss.Style

	// Editor styles.
	TitleStyle        lipgloss.Style
	ListBoxStyle      lipgloss.Style
	LineStyle         lipgloss.Style
	SelectedLineStyle lipgloss.Style
	DoneLineStyle     lipgloss.Style
	SelectedDoneStyle lipgloss.Style
	InputBoxStyle     lipgloss.Style
	InputTitleStyle   lipgloss.Style
	CursorStyle       lipgloss.Style
	PendingKeyStyle   lipgloss.Style
	WarningStyle      lipgloss.Style
	NoticeStyle       lipgloss.Style
	TextMutedStyle    lipgloss.Style

	// Modal styles.
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	DoneTextStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Strikethrough(true)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ListBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary)
	LineStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	SelectedLineStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface).
		Bold(true)
	DoneLineStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SelectedDoneStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Background(ColorSurface)
	InputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess)
	InputTitleStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	CursorStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorForeground)
	PendingKeyStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)
	WarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
	NoticeStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	TextMutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorError)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
