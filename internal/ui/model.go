package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"billfold/internal/invoice"
	"billfold/internal/prefs"
	"billfold/internal/sharelink"
)

// headerFieldCount is the number of form inputs before the item rows;
// each item contributes three inputs after that.
const headerFieldCount = 4

// fieldRef addresses one editable input: a header field when itemID is
// empty, otherwise a field of that item.
type fieldRef struct {
	field  invoice.Field
	itemID string
}

type tone int

const (
	toneInfo tone = iota
	toneOK
	toneWarn
	toneErr
)

type model struct {
	opts     Options
	store    *invoice.Store
	keys     keyMap
	theme    Theme
	styles   Styles
	mode     Mode
	location string

	inputs []textinput.Model
	fields []fieldRef
	focus  int

	status     string
	statusTone tone

	width  int
	height int
}

func newModel(opts Options) *model {
	m := &model{
		opts:     opts,
		store:    opts.Store,
		keys:     defaultKeyMap(),
		theme:    themeByName(opts.ThemeName),
		mode:     opts.Mode,
		location: opts.Location,
	}
	m.styles = m.theme.Styles()
	m.rebuild(m.store.Snapshot(), 0)
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case shareResultMsg:
		return m.handleShareResult(msg), nil

	case exportResultMsg:
		return m.handleExportResult(msg), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.CycleTheme):
			return m, m.cycleTheme()
		}
		if m.mode == ModeView {
			return m.updateView(msg)
		}
		return m.updateEdit(msg)
	}

	return m.forwardToFocused(msg)
}

func (m *model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ViewQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Edit):
		return m, m.exitView()
	case key.Matches(msg, m.keys.ViewShare):
		return m, shareCmd(m.store.Snapshot(), m.opts.Config.BaseURL)
	case key.Matches(msg, m.keys.ViewExport):
		return m, exportCmd(m.store.Snapshot(), m.opts.Config.OutputDir, m.opts.Config.Currency)
	}
	return m, nil
}

func (m *model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.AddItem):
		item := m.store.AddItem()
		cmd := m.rebuildFocusItem(item.ID)
		return m, cmd
	case key.Matches(msg, m.keys.RemoveItem):
		return m, m.removeFocusedItem()
	case key.Matches(msg, m.keys.Share):
		return m, shareCmd(m.store.Snapshot(), m.opts.Config.BaseURL)
	case key.Matches(msg, m.keys.Export):
		return m, exportCmd(m.store.Snapshot(), m.opts.Config.OutputDir, m.opts.Config.Currency)
	}
	return m.forwardToFocused(msg)
}

// forwardToFocused feeds the message to the focused input and pushes the
// resulting value into the store, so the preview tracks every keystroke.
func (m *model) forwardToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode != ModeEdit || len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncFocused()
	return m, cmd
}

func (m *model) syncFocused() {
	ref := m.fields[m.focus]
	value := m.inputs[m.focus].Value()
	if ref.field == invoice.FieldPrice {
		value = strings.TrimSpace(value)
	}
	if ref.itemID == "" {
		m.store.SetField(ref.field, value)
		return
	}
	m.store.UpdateItem(ref.itemID, ref.field, value)
}

func (m *model) moveFocus(delta int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

// exitView returns to edit mode and clears the token from the remembered
// location so nothing re-enters view mode later in the session.
func (m *model) exitView() tea.Cmd {
	m.mode = ModeEdit
	m.location = sharelink.StripToken(m.location)
	m.status = ""
	return m.rebuild(m.store.Snapshot(), 0)
}

func (m *model) removeFocusedItem() tea.Cmd {
	ref := m.fields[m.focus]
	if ref.itemID == "" {
		m.setStatus(toneWarn, "Focus an item row to remove it")
		return nil
	}
	m.store.RemoveItem(ref.itemID)
	doc := m.store.Snapshot()
	target := m.focus
	if max := headerFieldCount + 3*len(doc.Items); target >= max {
		target = max - 1
		if target < 0 {
			target = 0
		}
	}
	return m.rebuild(doc, target)
}

// rebuild recreates the input set from a document snapshot. Called on
// startup, on item add/remove, and when leaving view mode; never on
// plain keystrokes, so in-progress text survives editing.
func (m *model) rebuild(doc invoice.Document, focus int) tea.Cmd {
	m.inputs, m.fields = buildInputs(doc)
	if len(m.inputs) == 0 {
		m.focus = 0
		return nil
	}
	if focus < 0 || focus >= len(m.inputs) {
		focus = 0
	}
	m.focus = focus
	if m.mode != ModeEdit {
		return nil
	}
	return m.inputs[m.focus].Focus()
}

func (m *model) rebuildFocusItem(itemID string) tea.Cmd {
	doc := m.store.Snapshot()
	for i, ref := range buildRefs(doc) {
		if ref.itemID == itemID && ref.field == invoice.FieldDescription {
			return m.rebuild(doc, i)
		}
	}
	return m.rebuild(doc, 0)
}

func (m *model) cycleTheme() tea.Cmd {
	m.theme = nextTheme(m.theme.Name)
	m.styles = m.theme.Styles()
	m.setStatus(toneInfo, "Theme: "+m.theme.Name)
	return savePrefsCmd(m.opts.PrefsPath, prefs.Prefs{Theme: m.theme.Name})
}

func (m *model) handleShareResult(msg shareResultMsg) tea.Model {
	switch {
	case msg.err != nil:
		slog.Error("share link failed", "error", msg.err)
		m.setStatus(toneErr, "Share failed: "+msg.err.Error())
	case msg.clipErr != nil:
		slog.Warn("clipboard unavailable", "error", msg.clipErr)
		m.setStatus(toneWarn, "Link ready (clipboard unavailable): "+truncate(msg.url, 60))
	default:
		m.setStatus(toneOK, "Invoice link copied to clipboard!")
	}
	return m
}

func (m *model) handleExportResult(msg exportResultMsg) tea.Model {
	if msg.err != nil {
		slog.Error("image export failed", "error", msg.err)
		m.setStatus(toneErr, "Failed to generate image: "+msg.err.Error())
		return m
	}
	m.setStatus(toneOK, "Saved "+msg.path)
	return m
}

func (m *model) setStatus(t tone, text string) {
	m.statusTone = t
	m.status = text
}

func buildInputs(doc invoice.Document) ([]textinput.Model, []fieldRef) {
	refs := buildRefs(doc)
	inputs := make([]textinput.Model, 0, len(refs))

	values := map[fieldRef]string{
		{field: invoice.FieldRecipient}:     doc.Recipient,
		{field: invoice.FieldBillTo}:        doc.BillTo,
		{field: invoice.FieldInvoiceNumber}: doc.InvoiceNumber,
		{field: invoice.FieldDate}:          doc.Date,
	}
	for _, it := range doc.Items {
		values[fieldRef{invoice.FieldDescription, it.ID}] = it.Description
		values[fieldRef{invoice.FieldQuantity, it.ID}] = formatQty(it.Quantity)
		values[fieldRef{invoice.FieldPrice, it.ID}] = it.Price
	}

	for _, ref := range refs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.SetValue(values[ref])
		switch ref.field {
		case invoice.FieldDescription:
			in.Placeholder = "Description"
			in.Width = 22
		case invoice.FieldQuantity:
			in.Placeholder = "Qty"
			in.Width = 5
		case invoice.FieldPrice:
			in.Placeholder = "Price"
			in.Width = 9
		case invoice.FieldDate:
			in.Placeholder = "2006-01-02"
			in.Width = 14
		default:
			in.Width = 28
		}
		inputs = append(inputs, in)
	}
	return inputs, refs
}

func buildRefs(doc invoice.Document) []fieldRef {
	refs := []fieldRef{
		{field: invoice.FieldRecipient},
		{field: invoice.FieldBillTo},
		{field: invoice.FieldInvoiceNumber},
		{field: invoice.FieldDate},
	}
	for _, it := range doc.Items {
		refs = append(refs,
			fieldRef{invoice.FieldDescription, it.ID},
			fieldRef{invoice.FieldQuantity, it.ID},
			fieldRef{invoice.FieldPrice, it.ID},
		)
	}
	return refs
}
