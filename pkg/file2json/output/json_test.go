package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSONIndentation(t *testing.T) {
	got, err := ToJSON([]any{int64(1), "two"})
	require.NoError(t, err)
	assert.Equal(t, "[\n  1,\n  \"two\"\n]", got)
}

func TestToJSONNonASCIILiteral(t *testing.T) {
	got, err := ToJSON(map[string]string{"k": "héllo <&> 日本語"})
	require.NoError(t, err)
	assert.Contains(t, got, "héllo <&> 日本語")
	assert.NotContains(t, got, `\u`)
}

func TestToJSONNoTrailingNewline(t *testing.T) {
	got, err := ToJSON("x")
	require.NoError(t, err)
	assert.Equal(t, `"x"`, got)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	msg, err := WriteJSON(map[string]int{"n": 1}, path)
	require.NoError(t, err)
	assert.Equal(t, "JSON saved to "+path, msg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"n\": 1\n}", string(data))
}

func TestWriteJSONMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.json")

	_, err := WriteJSON(map[string]int{"n": 1}, path)
	assert.Error(t, err)
}
