package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"billfold/internal/config"
	"billfold/internal/invoice"
)

func testOptions(doc invoice.Document, mode Mode, location string) Options {
	return Options{
		Store: invoice.NewStore(doc),
		Config: config.Config{
			BaseURL:  "https://billfold.local/i",
			Currency: "$",
		},
		Mode:     mode,
		Location: location,
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LeavingViewModeStripsToken(t *testing.T) {
	location := "https://billfold.local/i?data=ABC123"
	m := newModel(testOptions(invoice.Default(), ModeView, location))

	updated, _ := m.Update(keyRunes("e"))
	m = updated.(*model)

	if m.mode != ModeEdit {
		t.Fatalf("mode = %v, want ModeEdit", m.mode)
	}
	if strings.Contains(m.location, "data=") {
		t.Fatalf("location = %q, want the data parameter removed", m.location)
	}
	if len(m.inputs) == 0 {
		t.Fatalf("no inputs after switching to edit mode")
	}
}

func TestModel_ViewModeIgnoresEditKeys(t *testing.T) {
	m := newModel(testOptions(invoice.Default(), ModeView, ""))
	before := m.store.Snapshot()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(*model)
	updated, _ = m.Update(keyRunes("Z"))
	m = updated.(*model)

	if !m.store.Snapshot().Equal(before) {
		t.Fatalf("document changed while read only")
	}
}

func TestModel_AddItemFocusesNewDescription(t *testing.T) {
	m := newModel(testOptions(invoice.Default(), ModeEdit, ""))
	before := len(m.store.Snapshot().Items)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(*model)

	items := m.store.Snapshot().Items
	if len(items) != before+1 {
		t.Fatalf("len(items) = %d, want %d", len(items), before+1)
	}
	if len(m.inputs) != headerFieldCount+3*len(items) {
		t.Fatalf("len(inputs) = %d, want %d", len(m.inputs), headerFieldCount+3*len(items))
	}

	ref := m.fields[m.focus]
	newest := items[len(items)-1]
	if ref.itemID != newest.ID || ref.field != invoice.FieldDescription {
		t.Fatalf("focus = %+v, want description of item %q", ref, newest.ID)
	}
}

func TestModel_RemoveFocusedItem(t *testing.T) {
	m := newModel(testOptions(invoice.Default(), ModeEdit, ""))
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(*model)
	doomed := m.fields[m.focus].itemID

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	m = updated.(*model)

	for _, it := range m.store.Snapshot().Items {
		if it.ID == doomed {
			t.Fatalf("removed item %q still present", doomed)
		}
	}
	if m.focus < 0 || m.focus >= len(m.inputs) {
		t.Fatalf("focus %d out of range for %d inputs", m.focus, len(m.inputs))
	}
}

func TestModel_RemoveOnHeaderFieldWarns(t *testing.T) {
	m := newModel(testOptions(invoice.Default(), ModeEdit, ""))
	before := len(m.store.Snapshot().Items)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	m = updated.(*model)

	if got := len(m.store.Snapshot().Items); got != before {
		t.Fatalf("len(items) = %d, want %d", got, before)
	}
	if m.statusTone != toneWarn || m.status == "" {
		t.Fatalf("status = (%v, %q), want a warning", m.statusTone, m.status)
	}
}

func TestModel_TypingUpdatesStoreLive(t *testing.T) {
	m := newModel(testOptions(invoice.Default(), ModeEdit, ""))
	want := m.store.Snapshot().Recipient + "!"

	updated, _ := m.Update(keyRunes("!"))
	m = updated.(*model)

	if got := m.store.Snapshot().Recipient; got != want {
		t.Fatalf("Recipient = %q, want %q", got, want)
	}
}

func TestModel_FocusWraps(t *testing.T) {
	m := newModel(testOptions(invoice.Default(), ModeEdit, ""))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(*model)

	if m.focus != len(m.inputs)-1 {
		t.Fatalf("focus = %d, want %d after wrapping backwards", m.focus, len(m.inputs)-1)
	}
}

func TestModel_ShareResultStatuses(t *testing.T) {
	m := newModel(testOptions(invoice.Default(), ModeEdit, ""))

	m.handleShareResult(shareResultMsg{url: "https://x", err: errors.New("boom")})
	if m.statusTone != toneErr {
		t.Fatalf("tone = %v, want toneErr", m.statusTone)
	}

	m.handleShareResult(shareResultMsg{url: "https://x?data=ABC", clipErr: errors.New("no clipboard")})
	if m.statusTone != toneWarn || !strings.Contains(m.status, "https://x?data=ABC") {
		t.Fatalf("status = (%v, %q), want warning carrying the link", m.statusTone, m.status)
	}

	m.handleShareResult(shareResultMsg{url: "https://x?data=ABC"})
	if m.statusTone != toneOK {
		t.Fatalf("tone = %v, want toneOK", m.statusTone)
	}
}

func TestRenderPreview_ShowsDocument(t *testing.T) {
	doc := invoice.Document{
		InvoiceNumber: "INV-55",
		Date:          "2026-05-05",
		BillTo:        "Ada",
		Recipient:     "Lovelace Ltd",
		Items: []invoice.Item{
			{ID: "1", Description: "consulting", Quantity: 2, Price: "12.50"},
		},
	}
	m := newModel(testOptions(doc, ModeEdit, ""))

	out := m.renderPreview()
	for _, want := range []string{
		"INVOICE",
		"INV-55",
		"2026-05-05",
		"Ada",
		"Lovelace Ltd",
		"consulting",
		"$12.50",
		"$25.00",
		"Thank you for your business!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q", want)
		}
	}
}

func TestRenderPreview_EmptyDescriptionFallsBack(t *testing.T) {
	doc := invoice.Document{
		Items: []invoice.Item{{ID: "1", Description: "", Quantity: 1, Price: "3"}},
	}
	m := newModel(testOptions(doc, ModeEdit, ""))

	if out := m.renderPreview(); !strings.Contains(out, "Item") {
		t.Fatalf("preview does not fall back to the generic item label")
	}
}
