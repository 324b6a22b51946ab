package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	app "github.com/rocketscienceinc/tictactoe-hotseat/internal"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
)

const configEnv = "TICTACTOE_CONFIG"

// main - is the entry point of the application. It initializes the configuration, logger, and runs the command line.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logFile := openLogFile(conf)
	logger := initLogger(conf, logFile)

	err := app.NewRootCmd(logger, conf).ExecuteContext(context.Background())

	if closeErr := logFile.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
	}

	if err != nil {
		os.Exit(1)
	}
}

// initialize config.
func initConfig() *config.Config {
	if path := os.Getenv(configEnv); path != "" {
		return config.MustLoad(path)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// the terminal UI owns stdout, so logs go to a file.
func openLogFile(conf *config.Config) *os.File {
	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	return file
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case config.LogLevelDebug:
		level = slog.LevelDebug
	case config.LogLevelWarn:
		level = slog.LevelWarn
	case config.LogLevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if conf.LogFormat == config.LogFormatText {
		handler := log.NewWithOptions(out, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
			Level:           log.Level(level),
		})
		return slog.New(handler)
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
