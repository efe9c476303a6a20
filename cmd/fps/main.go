package main

import (
	"os"
	"path/filepath"
	"strings"

	"fpsgame/internal/game"

	"github.com/charmbracelet/log"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "fps",
	})
	if os.Getenv("FPS_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if err := os.Chdir(execDir); err != nil {
				logger.Warn("chdir", "dir", execDir, "err", err)
			}
		}
	}

	if err := game.New(logger).Run(); err != nil {
		logger.Fatal("game", "err", err)
	}
}
