package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsedCmd(t *testing.T, args ...string) (*cobra.Command, options) {
	t.Helper()
	for _, k := range []string{
		"DOCNAV_FILE", "DOCNAV_WIDTH", "DOCNAV_PAGE_SIZE", "DOCNAV_ASCII",
		"DOCNAV_DEMO", "DOCNAV_LOG_LEVEL", "DOCNAV_LOG_FILE",
	} {
		t.Setenv(k, "")
	}
	cmd := &cobra.Command{}
	var o options
	bindFlags(cmd, &o)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, o
}

func TestResolveConfig_FlagsBeatEnvironment(t *testing.T) {
	cmd, o := parsedCmd(t, "--width", "90", "--ascii")
	t.Setenv("DOCNAV_WIDTH", "60")
	t.Setenv("DOCNAV_PAGE_SIZE", "10")

	cfg, err := resolveConfig(cmd, o, []string{"guide.md"})
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.FrameWidth)
	assert.Equal(t, 10, cfg.PageSize)
	assert.True(t, cfg.ASCII)
	assert.Equal(t, "guide.md", cfg.DocPath)
}

func TestResolveConfig_UnsetFlagsKeepDefaults(t *testing.T) {
	cmd, o := parsedCmd(t)

	cfg, err := resolveConfig(cmd, o, nil)
	require.NoError(t, err)
	assert.Equal(t, "DOCUMENTACION.md", cfg.DocPath)
	assert.Equal(t, 78, cfg.FrameWidth)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestResolveConfig_DebugForcesLevel(t *testing.T) {
	cmd, o := parsedCmd(t, "-d", "--log-level", "error")

	cfg, err := resolveConfig(cmd, o, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestResolveConfig_Invalid(t *testing.T) {
	cmd, o := parsedCmd(t, "--width", "10")

	_, err := resolveConfig(cmd, o, nil)
	assert.ErrorContains(t, err, "frame width")
}
