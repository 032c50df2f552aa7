package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chromeRows counts the rule under the editor plus the slider and status
// rows.
const chromeRows = 3

func (m *Model) layout() {
	m.help.Width = m.width
	body := max(m.height-chromeRows-lipgloss.Height(m.help.View(m.keys)), 2)
	edH := max(body/3, 1)
	m.editor = m.editor.SetSize(m.width, edH)
	m.canvas.Width = m.width
	m.canvas.Height = body - edH
	m.slider.Width = max(m.width/3, 10)
}

func (m Model) View() string {
	var body string
	if m.mode == modePick {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.label.Render("Pick a corpus file (esc to cancel) in "+m.picker.CurrentDirectory),
			m.picker.View(),
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.editor.View(),
			m.styles.rule.Render(strings.Repeat("─", max(m.width, 1))),
			m.canvas.View(),
		)
	}

	slider := fmt.Sprintf("%s %s %s",
		m.styles.label.Render("permissiveness"),
		m.slider.ViewAs(m.s.value),
		m.styles.label.Render(fmt.Sprintf("%.4f  threshold %.6f  arrows %d",
			m.s.value, m.s.frame.Threshold, m.s.frame.ArrowCount())),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		slider,
		m.styles.status.Render(m.status),
		m.help.View(m.keys),
	)
}
