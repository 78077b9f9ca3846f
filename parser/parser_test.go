package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openapigen/openapigen/oaserrors"
)

const minimalJSON = `{"openapi": "3.1.0", "info": {"title": "t", "version": "1"}, "paths": {"/a": {"get": {"responses": {"200": {"description": "ok"}}}, "post": {"responses": {}}}}}`

func TestParseWithOptionsSources(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "api.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(minimalJSON), 0o600))

	t.Run("file", func(t *testing.T) {
		result, err := ParseWithOptions(WithFilePath(jsonPath))
		require.NoError(t, err)
		assert.Equal(t, jsonPath, result.SourcePath)
		assert.Equal(t, SourceFormatJSON, result.SourceFormat)
		assert.Equal(t, "3.1.0", result.Version)
		assert.Equal(t, int64(len(minimalJSON)), result.SourceSize)
		assert.Equal(t, DocumentStats{PathCount: 1, OperationCount: 2, SchemaCount: 0}, result.Stats)
	})

	t.Run("reader", func(t *testing.T) {
		result, err := ParseWithOptions(WithReader(strings.NewReader("openapi: 3.0.0\npaths: {}\n")))
		require.NoError(t, err)
		assert.Equal(t, SourceFormatYAML, result.SourceFormat)
		assert.Equal(t, "ParseReader.yaml", result.SourcePath)
	})

	t.Run("bytes with source name", func(t *testing.T) {
		result, err := ParseWithOptions(WithBytes([]byte(minimalJSON)), WithSourceName("inline.json"))
		require.NoError(t, err)
		assert.Equal(t, "inline.json", result.SourcePath)
	})

	t.Run("no source", func(t *testing.T) {
		_, err := ParseWithOptions()
		assert.Error(t, err)
	})

	t.Run("two sources", func(t *testing.T) {
		_, err := ParseWithOptions(WithFilePath(jsonPath), WithBytes([]byte(minimalJSON)))
		assert.Error(t, err)
	})

	t.Run("nil reader", func(t *testing.T) {
		_, err := ParseWithOptions(WithReader(nil))
		assert.Error(t, err)
	})
}

func TestParseErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := New().Parse(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, oaserrors.ErrParse)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := New().ParseBytes([]byte("  \n"))
		assert.ErrorIs(t, err, oaserrors.ErrParse)
	})

	t.Run("syntax error names source", func(t *testing.T) {
		_, err := New().ParseBytes([]byte(`{"openapi": `))
		require.ErrorIs(t, err, oaserrors.ErrParse)
		assert.Contains(t, err.Error(), "ParseBytes.json")
	})

	t.Run("structural error has line", func(t *testing.T) {
		_, err := New().ParseBytes([]byte("openapi: 3.0.0\npaths:\n  /a: 12\n"))
		var pe *oaserrors.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 3, pe.Line)
	})
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromPath("a.json"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("a.yml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromPath("a.txt"))
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("  {}")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("a: 1")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent(nil))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KiB", FormatBytes(1024))
	assert.Equal(t, "1.5 MiB", FormatBytes(1024*1024*3/2))
}
