package core

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := t.TempDir()

	logFile := SetupLogging(false, dir)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
	if _, err := os.Stat(filepath.Join(dir, LogFileName)); !os.IsNotExist(err) {
		t.Error("Expected no log file when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	defer log.SetOutput(io.Discard)

	logFile := SetupLogging(true, dir)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	log.Println("Test log message")

	info, err := os.Stat(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}

	output := log.Writer()
	if output == os.Stdout || output == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	defer log.SetOutput(io.Discard)

	logPath := filepath.Join(dir, LogFileName)
	if err := os.WriteFile(logPath, make([]byte, MaxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	logFile := SetupLogging(true, dir)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != LogFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > MaxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", MaxLogSize, info.Size())
	}
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan int, 1)
	Go(func() { done <- 7 })
	if v := <-done; v != 7 {
		t.Errorf("got %d", v)
	}
}

func TestSetCrashScreen(t *testing.T) {
	SetCrashScreen(nil)
	if crashScreen.Load() != nil {
		t.Error("expected no registered screen")
	}
}

type finiScreen struct {
	tcell.Screen
	done chan struct{}
}

func (s *finiScreen) Fini() { close(s.done) }

func TestGoRecoversPanic(t *testing.T) {
	codes := make(chan int, 1)
	exit = func(code int) { codes <- code }
	defer func() { exit = os.Exit }()

	scr := &finiScreen{Screen: tcell.NewSimulationScreen("UTF-8"), done: make(chan struct{})}
	SetCrashScreen(scr)
	defer SetCrashScreen(nil)

	Go(func() { panic("corrupt asset") })

	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	select {
	case <-scr.done:
	default:
		t.Error("screen was not finalized")
	}
	if crashScreen.Load() != nil {
		t.Error("crash screen still registered")
	}
}
