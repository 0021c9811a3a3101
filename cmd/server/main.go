// Command server runs the documentation API and reader.
//
// Usage:
//
//	server               run with config from CONFIG_PATH / ./config.yaml and env
//	server -config-help  list the environment variables and exit
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/mydocs-backend/internal/app"
	"github.com/heartmarshall/mydocs-backend/internal/config"
)

func main() {
	configHelp := flag.Bool("config-help", false, "print configuration environment variables and exit")
	flag.Parse()

	if *configHelp {
		text, err := config.Describe()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(text)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
