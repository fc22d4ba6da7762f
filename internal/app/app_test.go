package app

import (
	"strings"
	"testing"

	"billfold/internal/invoice"
	"billfold/internal/sharelink"
	"billfold/internal/ui"
)

func TestBootstrap_NoLinkStartsEditing(t *testing.T) {
	doc, mode, location := Bootstrap("")
	if mode != ui.ModeEdit {
		t.Fatalf("mode = %v, want ModeEdit", mode)
	}
	if location != "" {
		t.Fatalf("location = %q, want empty", location)
	}
	if len(doc.Items) == 0 {
		t.Fatalf("default document has no items")
	}
}

func TestBootstrap_ValidLinkEntersViewMode(t *testing.T) {
	want := invoice.Document{
		InvoiceNumber: "INV-314",
		Date:          "2026-03-14",
		BillTo:        "Ada",
		Recipient:     "Lovelace Ltd",
		Items: []invoice.Item{
			{ID: "r1", Description: "consulting", Quantity: 2.5, Price: "120"},
			{ID: "r2", Description: "", Quantity: 1, Price: "7."},
		},
	}
	link, err := sharelink.BuildURL("https://billfold.local/i", want)
	if err != nil {
		t.Fatalf("BuildURL returned error: %v", err)
	}

	doc, mode, location := Bootstrap(link)
	if mode != ui.ModeView {
		t.Fatalf("mode = %v, want ModeView", mode)
	}
	if !doc.Equal(want) {
		t.Fatalf("document = %+v, want %+v", doc, want)
	}
	if location != link {
		t.Fatalf("location = %q, want %q", location, link)
	}

	// Leaving view mode must clear the token from the location.
	stripped := sharelink.StripToken(location)
	if strings.Contains(stripped, sharelink.Param+"=") {
		t.Fatalf("stripped location %q still carries the data parameter", stripped)
	}
}

func TestBootstrap_BareTokenEntersViewMode(t *testing.T) {
	want := invoice.Default()
	token, err := sharelink.Encode(want)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	doc, mode, _ := Bootstrap(token)
	if mode != ui.ModeView {
		t.Fatalf("mode = %v, want ModeView", mode)
	}
	if !doc.Equal(want) {
		t.Fatalf("document = %+v, want %+v", doc, want)
	}
}

func TestBootstrap_BadLinkFallsBackToEditing(t *testing.T) {
	for _, link := range []string{
		"https://billfold.local/i?data=notatoken%21",
		"garbagetoken",
	} {
		doc, mode, location := Bootstrap(link)
		if mode != ui.ModeEdit {
			t.Fatalf("Bootstrap(%q) mode = %v, want ModeEdit", link, mode)
		}
		if location != "" {
			t.Fatalf("Bootstrap(%q) location = %q, want empty", link, location)
		}
		if doc.InvoiceNumber != "INV-001" {
			t.Fatalf("Bootstrap(%q) document = %+v, want the default document", link, doc)
		}
	}
}
