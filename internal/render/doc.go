// Package render rasterizes the invoice preview into a PNG.
//
// The layout mirrors the on-screen paper bill: header with title and
// Ref/Date meta, Bill To / Pay To columns, a ruled item table and the
// grand total. Drawing happens at an oversampled scale (3× by default) on
// a solid white background so the exported file holds more pixel density
// than the preview itself.
//
// Rendering failures are ordinary errors for the caller to surface; no
// file is produced on failure and nothing here is fatal to the session.
package render
