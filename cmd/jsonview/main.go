// Command jsonview is a terminal JSON inspector.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/jsonview"
	"github.com/iw2rmb/jsonview/internal/app"
	"github.com/iw2rmb/jsonview/internal/clipboard"
	"github.com/iw2rmb/jsonview/settings"
)

type CLI struct {
	File string `arg:"" optional:"" help:"JSON file to open. Use - for stdin."`

	URL       string           `name:"url" help:"Share link or fragment to restore. Overrides FILE when it decodes."`
	BaseURL   string           `name:"base-url" env:"JSONVIEW_BASE_URL" default:"https://jsonview.local/" help:"Prefix for printed share links."`
	Settings  string           `type:"path" env:"JSONVIEW_SETTINGS" help:"Settings file (default: user config dir)."`
	Theme     string           `help:"Theme for this session only (light or dark)."`
	LogFile   string           `name:"log-file" type:"path" env:"JSONVIEW_LOG" help:"Write logs to this file."`
	Debug     bool             `help:"Log at debug level."`
	PrintLink bool             `name:"print-link" default:"true" negatable:"" help:"Print the share link on exit."`
	Version   kong.VersionFlag `help:"Show version and exit."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("jsonview"),
		kong.Description("Inspect, validate and share JSON in the terminal."),
		kong.UsageOnError(),
		kong.Vars{"version": jsonview.Version()},
	)
	if err := cli.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "jsonview: %v\n", err)
		os.Exit(1)
	}
}

func (c *CLI) Run(stdin io.Reader, stdout io.Writer) error {
	logger, closeLog, err := c.newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := c.appConfig(stdin, logger)
	if err != nil {
		return err
	}
	term := clipboard.NewTerminal(os.Stdout)
	cfg.Clipboard = clipboard.New(termenv.NewOutput(term))

	logger.Info("starting", slog.String("file", c.File), slog.Bool("fragment", c.URL != ""))
	p := tea.NewProgram(app.New(cfg), tea.WithOutput(term), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if m, ok := final.(app.Model); ok && c.PrintLink {
		if link := m.Link(); link != "" {
			fmt.Fprintln(stdout, link)
		}
	}
	return nil
}

func (c *CLI) appConfig(stdin io.Reader, logger *slog.Logger) (app.Config, error) {
	text, err := c.readDocument(stdin)
	if err != nil {
		return app.Config{}, err
	}
	cfg := app.Config{
		Text:     text,
		Fragment: c.URL,
		BaseURL:  c.BaseURL,
		Store:    c.store(logger),
		Logger:   logger,
	}
	if c.Theme != "" {
		t, err := settings.ParseTheme(c.Theme)
		if err != nil {
			return app.Config{}, err
		}
		cfg.Theme = &t
	}
	return cfg, nil
}

func (c *CLI) readDocument(stdin io.Reader) (string, error) {
	switch c.File {
	case "":
		return "", nil
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", c.File, err)
	}
	return string(b), nil
}

func (c *CLI) store(logger *slog.Logger) settings.Store {
	path := c.Settings
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			logger.Warn("settings not persisted", slog.Any("err", err))
			return settings.NewMemStore()
		}
		path = p
	}
	return settings.NewFileStore(path)
}

// newLogger writes to the log file when one is given. The terminal belongs
// to the UI, so logs are discarded otherwise.
func (c *CLI) newLogger() (*slog.Logger, func(), error) {
	if c.LogFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	logger := slog.New(h).With(slog.String("version", jsonview.Version()))
	return logger, func() { _ = f.Close() }, nil
}
