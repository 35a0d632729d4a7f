package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappings_ListsTable(t *testing.T) {
	stdout, _, err := execute(t, "mappings")
	require.NoError(t, err)
	assert.Contains(t, stdout, "∀")
	assert.Contains(t, stdout, "for all *", "canonical phrases are marked")
	assert.Contains(t, stdout, "mappings")
}

func TestMappings_CategoryFilter(t *testing.T) {
	stdout, _, err := execute(t, "mappings", "--category", "quantifier")
	require.NoError(t, err)
	assert.Contains(t, stdout, "∀")
	assert.Contains(t, stdout, "∃")
	assert.NotContains(t, stdout, "⟦Ω⟧")
}

func TestMappings_UnknownCategory(t *testing.T) {
	_, _, err := execute(t, "mappings", "--category", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMappings_JSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "mappings", "--category", "quantifier")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	data := resp.Data.(map[string]interface{})
	assert.Greater(t, data["symbols"], 70.0)
	assert.NotEmpty(t, data["entries"])
}

func TestMappings_YAMLPackExtendsTable(t *testing.T) {
	dir := t.TempDir()
	pack := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(pack, []byte(`mappings:
  - phrase: tensor product
    symbol: "⊗"
    category: math
    canonical: true
  - phrase: tensor
    symbol: "⊗"
    category: math
`), 0o644))

	stdout, _, err := execute(t, "--mappings", pack, "convert", "a tensor product b")
	require.NoError(t, err)
	assert.Contains(t, stdout, "⊗")
}

func TestMappings_BadYAMLPack(t *testing.T) {
	dir := t.TempDir()
	pack := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(pack, []byte("mappings: [{phrase: x, symbol: y, wat: 1}]"), 0o644))

	_, _, err := execute(t, "--mappings", pack, "convert", "x")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMappings_MissingYAMLPack(t *testing.T) {
	_, _, err := execute(t, "--mappings", "/nonexistent/pack.yaml", "convert", "x")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
