package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/craftops/atelier/internal/client/cli"
	"github.com/craftops/atelier/internal/client/config"
	"github.com/craftops/atelier/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
