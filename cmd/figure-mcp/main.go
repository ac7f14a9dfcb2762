package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ironsheep/figure-tools/internal/config"
	"github.com/ironsheep/figure-tools/internal/server"
	"github.com/ironsheep/figure-tools/pkg/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("figure-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("figure-mcp - MCP server for cropping and composing figure images")
			fmt.Println()
			fmt.Println("Usage: figure-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from .env):")
			fmt.Println("  LOG_LEVEL=debug           Log level (debug, info, warn, error)")
			fmt.Println("  GRID_FONT_PATH=arial.ttf  Preferred caption font")
			fmt.Println("  IMAGE_JPEG_QUALITY=95     JPEG output quality")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Debug("Starting figure-mcp",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("commit", GitCommit))

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to create server", zap.Error(err))
	}
	if err := srv.Run(); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
