package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter_JSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = "info"
	require.NoError(t, SetupWriter(cfg, &buf))

	log := WithComponent("ledger")
	log.Debug().Msg("hidden")
	log.Info().Str("client_id", "abc123").Msg("client added")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "ledger", entry["component"])
	assert.Equal(t, "abc123", entry["client_id"])
	assert.Equal(t, "client added", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestSetupWriter_BadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "loud"
	assert.Error(t, SetupWriter(cfg, &bytes.Buffer{}))
}

func TestSetup_FileOutput(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	path := filepath.Join(t.TempDir(), "ledger.log")
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = "info"
	cfg.Output = path

	closer, err := Setup(cfg)
	require.NoError(t, err)
	log := WithComponent("cli")
	log.Info().Msg("session started")
	require.NoError(t, closer.Close())
	assert.ErrorIs(t, closer.Close(), os.ErrClosed)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"message":"session started"`)
}

func TestSetup_StdStreamsStayOpen(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	for _, target := range []string{"", "stderr", "stdout"} {
		cfg := DefaultConfig()
		cfg.Output = target
		closer, err := Setup(cfg)
		require.NoError(t, err)
		assert.NoError(t, closer.Close())
		assert.NoError(t, closer.Close())
	}
}

func TestSetup_BadLevelReleasesFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "loud"
	cfg.Output = filepath.Join(t.TempDir(), "ledger.log")
	closer, err := Setup(cfg)
	assert.Error(t, err)
	assert.Nil(t, closer)
}
