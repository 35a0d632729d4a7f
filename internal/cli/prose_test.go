package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProse_Basic(t *testing.T) {
	stdout, _, err := execute(t, "prose", "∀x∈S")
	require.NoError(t, err)
	assert.Contains(t, stdout, "for all")
	assert.Contains(t, stdout, "in")
}

func TestProse_JSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "prose", "x≜5")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "x defined as 5", data["prose"])
}

func TestProse_MalformedInput(t *testing.T) {
	stdout, _, err := execute(t, "prose", "⟦Ω:Meta⟧{x≜1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "MALFORMED_AISP_INPUT")
}

func TestProse_MalformedInputJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "prose", "⟦Q:Stuff⟧{}")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MALFORMED_AISP_INPUT", resp.Error.Code)
}

func TestProse_Stdin(t *testing.T) {
	stdout, err := executeWithStdin(t, "⟦Ω⟧\n", "prose", "-")
	require.NoError(t, err)
	assert.Equal(t, "meta block\n", stdout)
}
