package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/pairs/internal/game"
)

func (m Model) View() string {
	if m.finished {
		return m.viewSummary()
	}

	header := fmt.Sprintf("%s  %s",
		titleStyle.Render("Pairs"),
		statusStyle.Render(m.statusLine()),
	)
	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.viewBoard(),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)
	return m.center(content)
}

func (m Model) statusLine() string {
	return fmt.Sprintf("moves %d  %s  %s  %s",
		m.session.Moves(),
		starGlyphs(m.session.Stars()),
		progressBar(m.session.MatchedPairs(), m.session.TotalPairs(), 16),
		m.stopwatch.View(),
	)
}

func (m Model) viewBoard() string {
	cards := m.session.Cards()
	cols := gridColumns(len(cards))
	if cols == 0 {
		return ""
	}
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, m.viewCard(i, cards[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewCard(i int, c game.CardView) string {
	face := "?"
	style := cardBack
	switch c.State {
	case game.Revealed:
		face = string(c.Symbol)
		style = cardFace
	case game.Matched:
		face = string(c.Symbol)
		style = cardDone
	}
	if i == m.cursor {
		style = style.BorderForeground(cursorColor)
	}
	return style.Render(face)
}

func (m Model) viewSummary() string {
	lines := []string{
		titleStyle.Render("You won!"),
		"",
		fmt.Sprintf("pairs    %d", m.summary.Pairs),
		fmt.Sprintf("moves    %d", m.summary.Moves),
		fmt.Sprintf("rating   %s", starGlyphs(m.summary.Stars)),
		fmt.Sprintf("time     %ds", m.summary.Seconds),
		"",
		helpStyle.Render("r play again · q quit"),
	}
	if m.saveErr != "" {
		lines = append(lines, "", errorStyle.Render("could not save result: "+m.saveErr))
	}
	return m.center(summaryStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func (m Model) center(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
