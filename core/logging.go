package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// LogFileName is the active log inside the log directory
	LogFileName = "moonwalk.log"

	// MaxLogSize triggers rotation on startup
	MaxLogSize = 10 * 1024 * 1024
)

// SetupLogging points the standard logger at dir/moonwalk.log when debug is set
// and discards log output otherwise; the terminal owns stdout and stderr
// An oversized log is renamed with a timestamp before a fresh file is opened
// The returned file is nil when logging is disabled or the file cannot be opened
func SetupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("moonwalk-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("moonwalk log opened pid=%d", os.Getpid())
	return f
}
