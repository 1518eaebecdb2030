package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// quitScreen сразу после Init кладёт в очередь нажатие q
type quitScreen struct {
	tcell.SimulationScreen
}

func (s quitScreen) Init() error {
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.SetSize(100, 40)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	return nil
}

func simScreen() (tcell.Screen, error) {
	return quitScreen{tcell.NewSimulationScreen("UTF-8")}, nil
}

func TestRunReportsSetupErrors(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	badCatalog := filepath.Join(t.TempDir(), "towers.json")
	if err := os.WriteFile(badCatalog, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	logFile := filepath.Join(t.TempDir(), "td.log")

	tests := []struct {
		name      string
		args      []string
		newScreen func() (tcell.Screen, error)
		wantCode  int
		wantErr   string
	}{
		{
			name:      "missing catalog",
			args:      []string{"-towers", filepath.Join(t.TempDir(), "nope.json")},
			newScreen: simScreen,
			wantCode:  1,
			wantErr:   "nope.json",
		},
		{
			name:      "empty catalog with log file",
			args:      []string{"-log", logFile, "-towers", badCatalog},
			newScreen: simScreen,
			wantCode:  1,
			wantErr:   "Каталог башен",
		},
		{
			name: "no terminal",
			args: nil,
			newScreen: func() (tcell.Screen, error) {
				return nil, errors.New("no tty")
			},
			wantCode: 1,
			wantErr:  "no tty",
		},
		{
			name:      "unknown flag",
			args:      []string{"-bogus"},
			newScreen: simScreen,
			wantCode:  2,
			wantErr:   "bogus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := run(tt.args, &stderr, tt.newScreen); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr %q does not mention %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRunQuitsCleanly(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	var stderr bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "td.log")
	if code := run([]string{"-log", logFile}, &stderr, simScreen); code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("log file not created: %v", err)
	}
	if log.Writer() != &stderr {
		t.Errorf("logging not handed back to stderr after the screen closed")
	}
}
