package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/jsonview/settings"
)

func parse(t *testing.T, args ...string) CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("jsonview"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func TestCLI_Defaults(t *testing.T) {
	cli := parse(t)
	assert.Empty(t, cli.File)
	assert.True(t, cli.PrintLink)
	assert.False(t, cli.Debug)
	assert.Equal(t, "https://jsonview.local/", cli.BaseURL)
}

func TestCLI_Flags(t *testing.T) {
	cli := parse(t, "doc.json", "--url=#abc", "--no-print-link", "--theme=dark", "--debug")
	assert.Equal(t, "doc.json", cli.File)
	assert.Equal(t, "#abc", cli.URL)
	assert.False(t, cli.PrintLink)
	assert.Equal(t, "dark", cli.Theme)
	assert.True(t, cli.Debug)
}

func TestCLI_Env(t *testing.T) {
	t.Setenv("JSONVIEW_BASE_URL", "https://example.com/v")
	cli := parse(t)
	assert.Equal(t, "https://example.com/v", cli.BaseURL)
}

func TestAppConfig_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{"a":1}`), 0o644))

	cli := CLI{File: doc, Settings: filepath.Join(dir, "settings.yaml"), Theme: "Dark"}
	logger, closeLog, err := cli.newLogger()
	require.NoError(t, err)
	defer closeLog()

	cfg, err := cli.appConfig(strings.NewReader(""), logger)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, cfg.Text)
	require.NotNil(t, cfg.Theme)
	assert.Equal(t, settings.Dark, *cfg.Theme)
	assert.IsType(t, &settings.FileStore{}, cfg.Store)
}

func TestAppConfig_Stdin(t *testing.T) {
	cli := CLI{File: "-", Settings: filepath.Join(t.TempDir(), "s.yaml")}
	logger, closeLog, err := cli.newLogger()
	require.NoError(t, err)
	defer closeLog()

	cfg, err := cli.appConfig(strings.NewReader("[1,2]"), logger)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", cfg.Text)
	assert.Nil(t, cfg.Theme)
}

func TestAppConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	logger, closeLog, err := (&CLI{}).newLogger()
	require.NoError(t, err)
	defer closeLog()

	_, err = (&CLI{File: filepath.Join(dir, "missing.json")}).appConfig(strings.NewReader(""), logger)
	assert.Error(t, err)

	_, err = (&CLI{Theme: "neon", Settings: filepath.Join(dir, "s.yaml")}).appConfig(strings.NewReader(""), logger)
	assert.ErrorIs(t, err, settings.ErrInvalidTheme)
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonview.log")
	cli := CLI{LogFile: path, Debug: true}
	logger, closeLog, err := cli.newLogger()
	require.NoError(t, err)

	logger.Debug("probe", "k", "v")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=probe")
	assert.Contains(t, string(data), "k=v")
	assert.Contains(t, string(data), "level=DEBUG")
}

func TestNewLogger_BadPath(t *testing.T) {
	cli := CLI{LogFile: filepath.Join(t.TempDir(), "no", "such", "dir", "x.log")}
	_, _, err := cli.newLogger()
	assert.Error(t, err)
}
