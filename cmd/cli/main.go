package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/cli"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/config"
	"github.com/eyeglaze/eyeglaze-cli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(context.Background())
}
