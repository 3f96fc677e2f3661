package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "settings.yaml"))

	v, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFileStore_SetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonview", "settings.yaml")
	s := NewFileStore(path)

	require.NoError(t, s.Set("theme", "dark"))
	require.NoError(t, s.Set("other", "x"))

	v, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	// A second store on the same file sees the values.
	v, ok, err = NewFileStore(path).Get("other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme: dark")

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_ReadsHandWrittenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("# prefs\ntheme: \"light\"\n"), 0o644))

	v, ok, err := NewFileStore(path).Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [dark\n"), 0o644))

	_, _, err := NewFileStore(path).Get("theme")
	assert.Error(t, err)
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()
	_, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("k", "v"))
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"light", Light, false},
		{"dark", Dark, false},
		{" Dark ", Dark, false},
		{"solarized", Light, true},
		{"", Light, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTheme)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThemeToggleAndString(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, Light, Light.Toggle().Toggle())
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "dark", Dark.String())
}

func TestLoadSaveTheme(t *testing.T) {
	s := NewMemStore()

	th, err := LoadTheme(s)
	require.NoError(t, err)
	assert.Equal(t, Light, th)

	require.NoError(t, SaveTheme(s, Dark))
	th, err = LoadTheme(s)
	require.NoError(t, err)
	assert.Equal(t, Dark, th)

	require.NoError(t, s.Set(ThemeKey, "neon"))
	th, err = LoadTheme(s)
	assert.ErrorIs(t, err, ErrInvalidTheme)
	assert.Equal(t, Light, th)
}
