package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/musetui/muse/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	pollMS := flag.Int("poll", 0, "status poll interval in milliseconds (optional, defaults to 500)")
	debug := flag.Bool("debug", false, "write debug logs to muse-debug.log")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Debug: *debug}
	if poll := *pollMS; poll > 0 {
		opts.PollMS = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "muse: %v\n", err)
		return 1
	}
	return 0
}
