package main

import (
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/okbaghel/devfolio/cmd/devfolio"
	"github.com/okbaghel/devfolio/logging"
)

func main() {
	slog.SetDefault(logging.NewLogger(os.Stderr, false))

	devfolio.Execute()
}
