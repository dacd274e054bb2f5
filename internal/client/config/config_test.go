package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		ServerEndpointAddr:  "127.0.0.1:50051",
		OnlineCheckInterval: 3 * time.Second,
		RequestTimeout:      10 * time.Second,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoad_JSONOverlay(t *testing.T) {
	path := writeFile(t, `{"server_endpoint_addr":"10.0.0.1:9000","request_timeout":"30s"}`)

	cfg, err := load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1:9000", cfg.ServerEndpointAddr)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval, "missing key keeps default")
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, `{"server_endpoint_addr":"10.0.0.1:9000","online_check_interval":5000000000}`)

	cfg, err := load(path, []string{"-c", path, "-a", "localhost:7000", "-r", "2", "-unknown", "x"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:7000", cfg.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
}

func TestLoad_IntervalFlag(t *testing.T) {
	cfg, err := load("", []string{"-i", "7"})
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := load(filepath.Join(t.TempDir(), "nope.json"), nil)
		require.ErrorContains(t, err, "read config file")
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := load(writeFile(t, `{`), nil)
		require.ErrorContains(t, err, "parse config file")
	})

	t.Run("bad flag value", func(t *testing.T) {
		_, err := load("", []string{"-i", "abc"})
		require.Error(t, err)
	})
}
