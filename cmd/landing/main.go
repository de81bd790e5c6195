package main

import (
	"log/slog"
	"os"
)

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}
