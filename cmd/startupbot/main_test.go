package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("COMMAND_PREFIX", "!")
	t.Setenv("ANTHROPIC_API_KEY", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRender_Pitch(t *testing.T) {
	out, err := execute(t, "render", "!pitch")

	require.NoError(t, err)
	assert.Contains(t, out, "Pitch Deck")
}

func TestRender_AskWithoutKey(t *testing.T) {
	out, err := execute(t, "render", "!ask", "how do I hire?")

	require.NoError(t, err)
	assert.Contains(t, out, "⚠️ AI feature not configured. Add ANTHROPIC_API_KEY to your environment.")
}

func TestRender_UnknownTipCategory(t *testing.T) {
	out, err := execute(t, "render", "!tip cooking")

	require.NoError(t, err)
	assert.Contains(t, out, "cooking")
}

func TestRender_NotACommand(t *testing.T) {
	_, err := execute(t, "render", "hello there")

	assert.Error(t, err)
}

func TestRun_RequiresDiscordToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := execute(t, "run")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}
