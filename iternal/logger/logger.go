package logger

import (
	"app/iternal/config"
	"io"
	"log"
	"log/slog"
	"os"
)

func MustInitLogger(cfg *config.Config) *slog.Logger {
	var out io.Writer = os.Stdout
	if cfg.Log.FilePath != "" {
		file, err := os.OpenFile(cfg.Log.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal("cannot open log file: ", err)
		}
		out = file
	}

	level := slog.LevelInfo
	if cfg.Env == "local" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}
