package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "perfect-pitch.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns the process logger and its file.
// Without debug logs are discarded, the terminal belongs to the game.
func setupLogging(debug bool, level zerolog.Level) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.New(io.Discard), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return zerolog.New(io.Discard), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.New(io.Discard), nil
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, f
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(logPath)
	rotated := fmt.Sprintf("%s.%s%s", logPath[:len(logPath)-len(ext)], time.Now().Format("20060102-150405"), ext)
	_ = os.Rename(logPath, rotated)
}
