package ui

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"billfold/internal/invoice"
	"billfold/internal/prefs"
	"billfold/internal/render"
	"billfold/internal/sharelink"
)

type shareResultMsg struct {
	url     string
	clipErr error
	err     error
}

type exportResultMsg struct {
	path string
	err  error
}

// shareCmd encodes the document into a share link and makes a
// best-effort attempt to place it on the system clipboard. The document
// is captured up front so a slow clipboard cannot see later edits.
func shareCmd(doc invoice.Document, base string) tea.Cmd {
	return func() tea.Msg {
		url, err := sharelink.BuildURL(base, doc)
		if err != nil {
			return shareResultMsg{err: err}
		}
		return shareResultMsg{url: url, clipErr: clipboard.WriteAll(url)}
	}
}

// exportCmd rasterizes the document and writes the PNG. On failure no
// file is produced and the error comes back as a status message.
func exportCmd(doc invoice.Document, dir, currency string) tea.Cmd {
	renderer := render.Renderer{Scale: render.DefaultScale, Currency: currency}
	return func() tea.Msg {
		img, err := renderer.Render(doc)
		if err != nil {
			return exportResultMsg{err: fmt.Errorf("generate image: %w", err)}
		}
		path, err := renderer.Save(img, dir, doc.InvoiceNumber)
		if err != nil {
			return exportResultMsg{err: err}
		}
		return exportResultMsg{path: path}
	}
}

func savePrefsCmd(path string, p prefs.Prefs) tea.Cmd {
	return func() tea.Msg {
		if err := prefs.Save(path, p); err != nil {
			slog.Warn("failed to save preferences", "error", err)
		}
		return nil
	}
}
