package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ozo-attend/internal/adapter/browser"
	"ozo-attend/internal/app"
	"ozo-attend/internal/config"
	"ozo-attend/internal/console"
	"ozo-attend/internal/domain"
	"ozo-attend/internal/projects"
)

func main() {
	// Flags
	projectsPath := flag.String("projects", "projects.yaml", "Path to the project list file")
	timeout := flag.Duration("timeout", 30*time.Second, "Budget for each wait on a page condition")
	verbose := flag.Bool("v", false, "Enable verbose logging")
	flag.Parse()

	// Logger
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	printer := console.New(os.Stdout)

	// The operation comes first: a bad token must fail before any browser
	// session is created.
	op, err := domain.ParseOperation(flag.Arg(0))
	if err != nil {
		printer.Error("%v (expected %q or %q)", err, domain.OperationClockIn, domain.OperationClockOut)
		os.Exit(1)
	}

	// .env is optional; real environment variables win either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not read .env file", slog.String("error", err.Error()))
	}

	cfg, err := config.Load()
	if err != nil {
		printer.Error("%v", err)
		os.Exit(1)
	}

	projectList, err := projects.Load(*projectsPath, logger)
	if err != nil {
		printer.Error("%v", err)
		os.Exit(1)
	}

	session, err := browser.Launch(cfg.Browser.Headless, logger)
	if err != nil {
		printer.Error("could not launch the browser: %v", err)
		os.Exit(1)
	}

	application, err := app.New(logger, printer, cfg, projectList, session, *timeout)
	if err != nil {
		printer.Error("%v", err)
		_ = session.Close()
		os.Exit(1)
	}

	runErr := application.Run(context.Background(), op, time.Now().Weekday())
	if closeErr := application.Close(); closeErr != nil {
		logger.Warn("browser teardown failed", slog.String("error", closeErr.Error()))
	}
	if runErr != nil {
		printer.Error("%v", runErr)
		os.Exit(1)
	}
}
