package main

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_ConfigFile(t *testing.T) {
	path := writeFixture(t, "config.json", `{"format":"json","log_level":"debug","allowed_formats":["pdf","html"]}`)

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ALLOWED_FORMATS", "")
	configPath, logLevel = path, ""
	t.Cleanup(func() { configPath, logLevel = "", "" })

	require.NoError(t, setup(rootCmd, nil))
	assert.Equal(t, "json", appConfig.Format)
	assert.Equal(t, []string{"pdf", "html"}, appConfig.AllowedFormats)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestSetup_LogLevelFlagWins(t *testing.T) {
	path := writeFixture(t, "config.json", `{"log_level":"debug"}`)

	configPath, logLevel = path, "error"
	t.Cleanup(func() { configPath, logLevel = "", "" })

	require.NoError(t, setup(rootCmd, nil))
	assert.Equal(t, logrus.ErrorLevel, logger.GetLevel())
}

func TestSetup_InvalidConfig(t *testing.T) {
	path := writeFixture(t, "config.json", `{"format":"yaml"}`)

	configPath = path
	t.Cleanup(func() { configPath = "" })

	err := setup(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'format' failed 'oneof'")
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"analyze", "extract", "taxonomy", "serve"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
