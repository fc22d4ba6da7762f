// Package invoice holds the editable invoice document and the store that
// owns it for the lifetime of a session.
//
// # Model
//
// A Document is a handful of free-text header fields plus an ordered list
// of Items. Item identifiers are opaque and unique within the document;
// they exist so the form can address rows while the user reorders nothing
// and edits everything.
//
// Two deliberate quirks carried over from the tool's behavior:
//
//   - Item.Price is stored as the raw text the user typed. Coercion to a
//     number happens only when a total is computed or the preview is
//     rendered, with 0 as the fallback for unparsable input. This keeps
//     in-progress typing (e.g. "12.") intact in the form.
//   - No field is validated. Empty invoice numbers, blank parties and
//     zero-item documents are all legal; totals still compute.
//
// # Store
//
// Store follows a replace-whole-document discipline: every mutation
// produces the next Document value and swaps it in under the lock, and
// Snapshot hands out defensive copies. With a single logical writer this
// makes each edit atomic from any reader's perspective; there are no
// partial updates to race against.
package invoice
