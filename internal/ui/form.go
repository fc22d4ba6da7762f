package ui

import (
	"strings"
)

var headerLabels = [headerFieldCount]string{
	"Pay To (Recipient)",
	"Bill To (Customer)",
	"Invoice Number",
	"Date",
}

// renderForm draws the editor panel: header fields followed by one line
// per item row.
func (m *model) renderForm() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Invoice Generator"))
	b.WriteString("\n\n")

	for i := 0; i < headerFieldCount && i < len(m.inputs); i++ {
		b.WriteString(m.styles.Label.Render(headerLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputView(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Items"))
	b.WriteString("\n")

	rows := (len(m.inputs) - headerFieldCount) / 3
	if rows == 0 {
		b.WriteString(m.styles.Muted.Render("  (no items — ctrl+n to add one)"))
		b.WriteString("\n")
	}
	for row := 0; row < rows; row++ {
		base := headerFieldCount + row*3
		marker := "  "
		if m.focus >= base && m.focus < base+3 {
			marker = m.styles.Title.Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(m.inputView(base))
		b.WriteString(" ")
		b.WriteString(m.inputView(base + 1))
		b.WriteString(" ")
		b.WriteString(m.inputView(base + 2))
		b.WriteString("\n")
	}

	return b.String()
}

// inputView renders one input inside a bracket frame; the focused frame
// takes the accent color so the cursor is easy to find among many small
// fields.
func (m *model) inputView(i int) string {
	frame := m.styles.Muted
	if i == m.focus {
		frame = m.styles.Title
	}
	return frame.Render("[") + m.inputs[i].View() + frame.Render("]")
}
