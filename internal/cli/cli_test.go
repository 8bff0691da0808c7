package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/forexample/internal/cli"
)

func TestParse_PositionalSuitesPath(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse([]string{"./suites"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "./suites", cfg.SuitesPath)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "warn", cfg.LogLevel)
	require.False(t, cfg.NoColor)
}

func TestParse_SuitesFlagWinsOverPositional(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := cli.Parse([]string{"--suites", "a.hcl", "b.hcl"}, out)

	require.NoError(t, err)
	require.Equal(t, "a.hcl", cfg.SuitesPath)
}

func TestParse_ShorthandFlag(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := cli.Parse([]string{"-s", "x.hcl", "-no-color"}, out)

	require.NoError(t, err)
	require.Equal(t, "x.hcl", cfg.SuitesPath)
	require.True(t, cfg.NoColor)
}

func TestParse_NoPathPrintsUsageAndExits(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse(nil, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_HelpFlagExitsCleanly(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := cli.Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := cli.Parse([]string{"--log-format", "xml", "x.hcl"}, out)

	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "log-format")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, _, err := cli.Parse([]string{"--log-level", "loud", "x.hcl"}, out)

	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "log-level")
}
