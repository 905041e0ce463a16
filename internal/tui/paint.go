package tui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/backlog/internal/core/styles"
)

const modalMaxWidth = 60

// Paint renders a Frame as styled terminal output.
func Paint(f Frame) string {
	if f.Width <= 0 || f.Height <= 0 {
		return ""
	}

	inner := max(f.Width-borderCols, 1)

	parts := []string{paintTitle(f)}
	parts = append(parts, styles.ListBoxStyle.Render(paintList(f, inner)))

	if f.Input != nil {
		parts = append(parts, styles.InputBoxStyle.Render(paintInput(f.Input, inner)))
	}

	switch {
	case f.Warning != "":
		parts = append(parts, styles.WarningStyle.Render(truncate(f.Warning, f.Width)))
	case f.Notice != "":
		parts = append(parts, styles.NoticeStyle.Render(truncate(f.Notice, f.Width)))
	}

	h := help.New()
	parts = append(parts, truncate(h.ShortHelpView(f.Help), f.Width))

	screen := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if f.Confirm != nil {
		screen = overlayConfirm(screen, f.Confirm, f.Width, f.Height)
	}
	return screen
}

func paintTitle(f Frame) string {
	title := styles.TitleStyle.Render(f.Title)
	if f.Pending {
		title += styles.PendingKeyStyle.Render("  d-")
	}
	return title
}

func paintList(f Frame, inner int) string {
	out := make([]string, 0, f.ListHeight)

	if f.Empty != "" {
		out = append(out, styles.TextMutedStyle.Render(pad(truncate(f.Empty, inner), inner)))
	}

	for _, line := range f.Lines {
		text := pad(line.Prefix+line.Text, inner)

		var style lipgloss.Style
		switch {
		case line.Selected && line.Done:
			style = styles.SelectedDoneStyle
		case line.Selected:
			style = styles.SelectedLineStyle
		case line.Done:
			style = styles.DoneLineStyle
		default:
			style = styles.LineStyle
		}
		out = append(out, style.Render(text))
	}

	for len(out) < f.ListHeight {
		out = append(out, strings.Repeat(" ", inner))
	}
	return strings.Join(out, "\n")
}

func paintInput(in *InputLine, inner int) string {
	cursor := in.Cursor
	if cursor == "" {
		cursor = " "
	}

	line := styles.InputTitleStyle.Render(in.Title+": ") +
		in.Before +
		styles.CursorStyle.Render(cursor) +
		in.After
	return pad(line, inner)
}

func overlayConfirm(background string, c *ConfirmPrompt, width, height int) string {
	modalWidth := min(modalMaxWidth, max(width-4, 10))
	textWidth := max(modalWidth-6, 1)

	wrapped, _ := Wrap(c.Text, textWidth)
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(c.Label),
		"",
		strings.Join(wrapped, "\n"),
		styles.ModalHelpStyle.Render("y/enter delete  any other key cancel"),
	)
	modal := styles.ModalStyle.Render(content)

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	centerX := max((width-modalW)/2, 0)
	centerY := max((height-modalH)/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}

// pad right-pads s with spaces to width cells.
func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, width int) string {
	return ansi.Truncate(s, max(width, 1), "…")
}
