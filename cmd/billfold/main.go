package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"billfold/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	openLink := flag.String("open", "", "share link or token to open in view mode (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, OpenLink: *openLink}
	if opts.OpenLink == "" && flag.NArg() > 0 {
		opts.OpenLink = flag.Arg(0)
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "billfold: %v\n", err)
		return 1
	}
	return 0
}
