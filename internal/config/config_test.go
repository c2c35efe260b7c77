package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// clearEnv unsets a variable for the duration of the test while preserving
// the original value for restoration.
func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t, "DISCORD_TOKEN")
	clearEnv(t, "CHANGELOG_CHANNEL_ID")
	clearEnv(t, "LOG_LEVEL")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	contents := "DISCORD_TOKEN=abc123\nCHANGELOG_CHANNEL_ID=987654321\nSOME_OTHER_KEY=ignored\n"
	require.NoError(t, os.WriteFile(envFile, []byte(contents), 0o600))

	cfg, err := Load(testLogger(), envFile)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.DiscordToken)
	assert.Equal(t, "987654321", cfg.ChangelogChannelID)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Complete())
}

func TestLoadMissingEnvFileUsesProcessEnvironment(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "env-token")
	t.Setenv("CHANGELOG_CHANNEL_ID", "42")

	cfg, err := Load(testLogger(), filepath.Join(t.TempDir(), "does-not-exist.env"))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.DiscordToken)
	assert.Equal(t, "42", cfg.ChangelogChannelID)
	assert.True(t, cfg.Complete())
}

func TestLoadEnvironmentWinsOverFile(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "from-env")
	clearEnv(t, "CHANGELOG_CHANNEL_ID")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DISCORD_TOKEN=from-file\nCHANGELOG_CHANNEL_ID=7\n"), 0o600))

	cfg, err := Load(testLogger(), envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.DiscordToken)
	assert.Equal(t, "7", cfg.ChangelogChannelID)
}

func TestLoadMissingKeysIsNotAnError(t *testing.T) {
	clearEnv(t, "DISCORD_TOKEN")
	clearEnv(t, "CHANGELOG_CHANNEL_ID")

	cfg, err := Load(testLogger(), filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.False(t, cfg.Complete())
}

func TestComplete(t *testing.T) {
	assert.True(t, Config{DiscordToken: "t", ChangelogChannelID: "c"}.Complete())
	assert.False(t, Config{DiscordToken: "t"}.Complete())
	assert.False(t, Config{ChangelogChannelID: "c"}.Complete())
	assert.False(t, Config{}.Complete())
}

func TestLoadLogLevelOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DISCORD_TOKEN", "t")
	t.Setenv("CHANGELOG_CHANNEL_ID", "c")

	cfg, err := Load(testLogger(), filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
