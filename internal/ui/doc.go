// Package ui implements the Billfold terminal interface on bubbletea.
//
// # Modes
//
// The model owns the session's Mode. Edit mode shows the form panel next
// to the live preview; every keystroke in a focused input is pushed into
// the invoice store, so the preview is never stale. View mode — entered
// only when a share link decoded at startup — shows the preview alone:
// mutation is unreachable because the form simply is not presented.
// Leaving view mode strips the data parameter from the remembered
// location, the terminal analogue of history.replaceState.
//
// # Inputs
//
// Form inputs are rebuilt from a store snapshot only when the row set
// changes (add/remove item, mode switch), never on plain keystrokes, so
// in-progress text like a trailing decimal point survives editing.
//
// # Actions
//
// Share and export run as bubbletea commands. Share builds the link and
// writes it to the clipboard best-effort; export rasterizes the bill to a
// PNG. Both report back as status messages and neither can fail the
// session. There is no in-flight guard: repeating either action is just
// duplicate work on the same document.
package ui
