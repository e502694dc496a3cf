package src

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractArgsDefaults(t *testing.T) {
	cfg, err := ExtractArgs(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
	require.Equal(t, "./www", cfg.Root)
}

func TestExtractArgs(t *testing.T) {
	root := t.TempDir()

	cfg, err := ExtractArgs([]string{"--port=9090", "--loc=" + root})
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, root, cfg.Root)
	require.Equal(t, "http://127.0.0.1:9090", cfg.BaseURL)

	cfg, err = ExtractArgs([]string{"--base=https://files.example.com/", "--port=9090"})
	require.NoError(t, err)
	require.Equal(t, "https://files.example.com", cfg.BaseURL)
	require.Equal(t, 9090, cfg.Port)
}

func TestExtractArgsErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	for _, args := range [][]string{
		{"--port=abc"},
		{"--port=80"},
		{"--port=50000"},
		{"--loc="},
		{"--loc=" + filepath.Join(t.TempDir(), "missing")},
		{"--loc=" + file},
		{"--base=127.0.0.1:8080"},
		{"--verbose"},
	} {
		_, err := ExtractArgs(args)
		require.Error(t, err, "args %v", args)
	}
}

func TestBindPort(t *testing.T) {
	listener, err := BindPort(0)
	require.NoError(t, err)
	defer listener.Close()
	require.Contains(t, listener.Addr().String(), "127.0.0.1:")
}
