package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/contactdesk/contactdesk/internal/client"
	"github.com/contactdesk/contactdesk/internal/ui"
)

func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("CONTACTS_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5002"
	}

	// The terminal owns stdout; route logs to a file when asked for,
	// otherwise drop them.
	logOut := io.Writer(io.Discard)
	if path := os.Getenv("CONTACTS_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	api := client.New(client.Config{BaseURL: baseURL})
	app := ui.NewAppModel(api)

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
