package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"katgen/internal/logger"
)

var lg *zap.SugaredLogger

func main() {
	_ = godotenv.Load()
	lg = logger.New()
	defer lg.Sync()
	if err := rootCmd.Execute(); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}
