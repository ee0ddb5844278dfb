package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"newshub/adaptors"
	"newshub/config"
	"newshub/db"
	"newshub/tui"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// runSession starts the interactive terminal session. This is the default
// action when no command is given.
func runSession(ctx *cli.Context) error {
	cfg, err := config.LoadConfig(ctx.String("config"), ctx.String("benzinga-key"))
	if err != nil {
		return err
	}

	dbPath := ctx.String("database")
	store, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	// The TUI owns the terminal, so logs go to a file next to the database.
	logPath := filepath.Join(filepath.Dir(dbPath), "newshub.log")
	if logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	items, err := store.LoadAll()
	if err != nil {
		log.Errorf("Failed to load stored items: %v", err)
	}

	session := tui.NewSession(store, adaptors.BuildAdaptors(cfg), items)
	program := tea.NewProgram(session, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("session error: %w", err)
	}

	return nil
}
