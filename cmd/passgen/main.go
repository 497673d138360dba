package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen/internal/cli"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	if err := cli.Execute(); err != nil {
		slog.Error("passgen failed", "error", err)
		os.Exit(1)
	}
}
