// Package app provides the orchestration layer for Billfold.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the
// invoice store and the UI. It is the composition root: everything is
// initialized here and handed to ui.Run, which blocks for the session.
//
// # Startup
//
//  1. Load config from ~/.config/billfold/config.toml (defaults if absent)
//  2. Point slog at the configured log file (best-effort)
//  3. Load user preferences (theme)
//  4. Resolve the -open argument: decode a share link into the starting
//     document and view mode, or fall back to the sample document in edit
//     mode
//  5. Seed the invoice store and start the TUI (blocks)
//
// # Error handling
//
// Config parse failures are fatal before the UI starts. A bad share link
// is not: it is logged and the session starts fresh in edit mode, exactly
// as if no link had been given. After the UI is up nothing is fatal;
// share, export and clipboard failures surface as status messages.
package app
