package ui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	if m.mode == ModeView {
		body = m.renderPreview()
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderForm(),
			"   ",
			m.renderPreview(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (m *model) renderHeader() string {
	badge := m.styles.Badge.Render("BILLFOLD")
	if m.mode == ModeView {
		return lipgloss.JoinHorizontal(lipgloss.Center,
			badge, " ", m.styles.Warning.Render("view only"),
		)
	}
	return badge
}

func (m *model) renderFooter() string {
	help := m.styles.Help.Render(m.helpLine())
	if m.status == "" {
		return help
	}

	var style lipgloss.Style
	switch m.statusTone {
	case toneOK:
		style = m.styles.Success
	case toneWarn:
		style = m.styles.Warning
	case toneErr:
		style = m.styles.Danger
	default:
		style = m.styles.Text
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(m.status), help)
}

func (m *model) helpLine() string {
	if m.mode == ModeView {
		return "e edit / create new • s share link • x download image • q quit"
	}
	return "tab next • ctrl+n add item • ctrl+x remove item • ctrl+s share • ctrl+e download • ctrl+t theme • ctrl+c quit"
}
