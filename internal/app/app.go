package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"billfold/internal/config"
	"billfold/internal/invoice"
	"billfold/internal/logging"
	"billfold/internal/prefs"
	"billfold/internal/sharelink"
	"billfold/internal/ui"
)

// Options configure the Billfold application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/billfold/prefs.toml
	OpenLink   string // share link or bare token; empty starts a fresh edit session
}

// Run boots the Billfold TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Logging is best-effort; the session works without a log file.
	if closer, err := logging.Setup(cfg.LogFile); err == nil {
		defer closer.Close()
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		userPrefs = prefs.Prefs{}
	}

	doc, mode, location := Bootstrap(opts.OpenLink)
	store := invoice.NewStore(doc)

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    cfg,
		Mode:      mode,
		Location:  location,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}

// Bootstrap resolves the startup link into the initial document, mode and
// remembered location. Runs exactly once per session. A missing or
// undecodable link falls back to the default document in edit mode; the
// failure is logged and nothing else happens.
func Bootstrap(openLink string) (invoice.Document, ui.Mode, string) {
	token, ok := sharelink.ExtractToken(openLink)
	if !ok {
		return invoice.Default(), ui.ModeEdit, ""
	}

	doc, err := sharelink.Decode(token)
	if err != nil {
		slog.Warn("failed to decode invoice data", "error", err)
		return invoice.Default(), ui.ModeEdit, ""
	}

	location := strings.TrimSpace(openLink)
	if location == token {
		// A bare token has no surrounding URL; synthesize a location so
		// leaving view mode can strip the parameter uniformly.
		location = "?" + sharelink.Param + "=" + token
	}
	return doc, ui.ModeView, location
}
