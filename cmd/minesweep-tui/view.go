package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	ms "minesweep"
)

type styles struct {
	hud     lipgloss.Style
	covered [2]lipgloss.Style
	open    [2]lipgloss.Style
	numbers [8]lipgloss.Color
	flag    lipgloss.Color
	mine    lipgloss.Color
	hit     lipgloss.Style
	cursor  lipgloss.Style
	message lipgloss.Style
	help    lipgloss.Style
	box     lipgloss.Style
}

func defaultStyles() styles {
	s := styles{
		hud: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#509B00")),
		covered: [2]lipgloss.Style{
			lipgloss.NewStyle().Background(lipgloss.Color("#A5E650")),
			lipgloss.NewStyle().Background(lipgloss.Color("#96D74B")),
		},
		open: [2]lipgloss.Style{
			lipgloss.NewStyle().Background(lipgloss.Color("#F5EBC8")),
			lipgloss.NewStyle().Background(lipgloss.Color("#EBE1B9")),
		},
		numbers: [8]lipgloss.Color{
			"#50A0E6", "#32BE28", "#D72323", "#5F05BE",
			"#FFD70A", "#05C8C8", "#FA87D2", "#50E18C",
		},
		flag: lipgloss.Color("#C80A0A"),
		mine: lipgloss.Color("#C80A0A"),
		hit:  lipgloss.NewStyle().Background(lipgloss.Color("#780000")),
		cursor: lipgloss.NewStyle().
			Reverse(true),
		message: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700")),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#509B00")).
			Padding(0, 1),
	}

	return s
}

func (m model) View() string {
	hud := m.game.HUD()

	boardView := m.boardView(hud)

	hudText := fmt.Sprintf("flags %3d   time %3d", hud.RemainingFlags, hud.ElapsedSeconds)
	hudView := m.styles.hud.
		Width(max(lipgloss.Width(boardView), lipgloss.Width(hudText))).
		Align(lipgloss.Center).
		Render(hudText)

	lines := []string{hudView, boardView}

	if msg := m.game.EndMessage(); msg != "" {
		lines = append(lines, "", m.styles.message.Render(msg))
	}
	if msg := m.game.RecordMessage(); msg != "" && hud.Finished {
		lines = append(lines, m.styles.message.Render(msg))
	}

	lines = append(lines, "", m.styles.help.Render(m.helpView()))

	mainView := m.styles.box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	if m.width == 0 || m.height == 0 {
		return mainView
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, mainView)
}

func (m model) boardView(hud ms.HUD) string {
	var sb strings.Builder

	for y := 0; y < m.game.Height(); y++ {
		for x := 0; x < m.game.Width(); x++ {
			cell, _ := m.game.CellView(m.game.Index(x, y))

			text := m.cellView(cell, hud)
			if x == m.cursorX && y == m.cursorY {
				text = m.styles.cursor.Render(text)
			}
			sb.WriteString(text)
		}
		if y != m.game.Height()-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (m model) cellView(cell ms.CellView, hud ms.HUD) string {
	parity := (cell.Col + cell.Row) % 2

	if !cell.Revealed {
		style := m.styles.covered[parity]
		if cell.Flagged {
			return style.Foreground(m.styles.flag).Bold(true).Render(" F")
		}
		return style.Render("  ")
	}

	style := m.styles.open[parity]

	switch {
	case cell.IsMine && cell.Index == hud.HitIndex:
		return m.styles.hit.Foreground(m.styles.mine).Bold(true).Render(" *")
	case cell.IsMine:
		return style.Foreground(m.styles.mine).Bold(true).Render(" *")
	case cell.Contacts > 0:
		return style.Foreground(m.styles.numbers[cell.Contacts-1]).Bold(true).
			Render(fmt.Sprintf(" %d", cell.Contacts))
	default:
		return style.Render("  ")
	}
}

func (m model) helpView() string {
	var parts []string
	for _, b := range m.keys.helpLine() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, " • ")
}
