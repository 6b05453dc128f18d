package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadServer(filepath.Join(t.TempDir(), "nope.yml"))
		require.NoError(t, err)
		assert.Equal(t, 8093, cfg.Port)
		assert.Equal(t, "dashboard.json", cfg.DashboardFile)
	})

	t.Run("values are read and validated", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
port: 9000
tflBaseURL: https://tfl.example.com
huxleyBaseURL: https://huxley.example.com
requestTimeoutMS: 5000
shutdownTimeoutMS: 2000
dashboardFile: /tmp/board.json
`), 0644))

		cfg, err := LoadServer(path)
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, "https://tfl.example.com", cfg.TfLBaseURL)
		assert.Equal(t, "https://huxley.example.com", cfg.HuxleyBaseURL)
		assert.Equal(t, 5000, cfg.RequestTimeoutMS)
		assert.Equal(t, 2000, cfg.ShutdownTimeoutMS)
		assert.Equal(t, "/tmp/board.json", cfg.DashboardFile)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("port: -1\n"), 0644))
		_, err := LoadServer(path)
		assert.Error(t, err)

		require.NoError(t, os.WriteFile(path, []byte("tflBaseURL: not-a-url\n"), 0644))
		_, err = LoadServer(path)
		assert.Error(t, err)
	})
}
