package ui

import (
	"fmt"
	"strings"

	"billfold/internal/invoice"
)

// paperWidth is the inner column width of the preview pane.
const paperWidth = 46

// renderPreview draws the paper bill from the current document snapshot.
// It is recomputed on every frame, which is what makes the preview live.
func (m *model) renderPreview() string {
	doc := m.store.Snapshot()
	cur := m.opts.Config.Currency

	var lines []string
	add := func(s string) { lines = append(lines, s) }

	add(twoCol("INVOICE", "Ref:  "+truncate(doc.InvoiceNumber, 20), paperWidth))
	add(twoCol("", "Date: "+truncate(doc.Date, 20), paperWidth))
	add(strings.Repeat("─", paperWidth))
	add("")
	add(twoCol(padTo("BILL TO:", 23)+"PAY TO:", "", paperWidth))
	add(twoCol(padTo(truncate(doc.BillTo, 22), 23)+truncate(doc.Recipient, 22), "", paperWidth))
	add("")
	add(itemRow("Item", "Qty", "Price", "Total"))
	add(strings.Repeat("─", paperWidth))
	for _, it := range doc.Items {
		desc := it.Description
		if desc == "" {
			desc = "Item"
		}
		price := invoice.CoerceAmount(it.Price)
		add(itemRow(
			truncate(desc, 19),
			formatQty(it.Quantity),
			cur+fmt.Sprintf("%.2f", price),
			cur+fmt.Sprintf("%.2f", it.Quantity*price),
		))
	}
	add(strings.Repeat("─", paperWidth))
	add(itemRow("", "", "Total:", cur+fmt.Sprintf("%.2f", doc.Total())))
	add("")
	add(center("Thank you for your business!", paperWidth))

	return m.styles.Paper.Render(strings.Join(lines, "\n"))
}

// itemRow formats one table line: description left, numbers right.
func itemRow(desc, qty, price, total string) string {
	return fmt.Sprintf("%-19s %6s %9s %9s", desc, qty, price, total)
}

func padTo(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
