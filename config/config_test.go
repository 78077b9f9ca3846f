package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openapigen/openapigen/oaserrors"
	"github.com/openapigen/openapigen/parser"
)

func TestParse(t *testing.T) {
	t.Run("schemas key keeps order", func(t *testing.T) {
		cfg, err := Parse([]byte(`{
			"schemas": {
				"Zeta": {"type": "string"},
				"Alpha": {"type": "object", "properties": {"id": {"type": "integer"}}}
			}
		}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Zeta", "Alpha"}, cfg.Names())
		alpha, _ := cfg.SharedSchemas.Get("Alpha")
		assert.Equal(t, parser.KindObject, alpha.Kind())
	})

	t.Run("sharedSchemas alias in YAML", func(t *testing.T) {
		cfg, err := Parse([]byte("sharedSchemas:\n  Id:\n    type: string\n    format: uuid\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Id"}, cfg.Names())
	})

	t.Run("no table", func(t *testing.T) {
		cfg, err := Parse([]byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.SharedSchemas.Len())
	})

	t.Run("explicit nullable false is allowed", func(t *testing.T) {
		_, err := Parse([]byte(`{"schemas": {"A": {"type": "string", "nullable": false}}}`))
		assert.NoError(t, err)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		target error
	}{
		{"nullable shared type", `{"schemas": {"Page": {"type": "object", "nullable": true}}}`, oaserrors.ErrConfig},
		{"null type tag", `{"schemas": {"Name": {"type": ["string", "null"]}}}`, oaserrors.ErrConfig},
		{"invalid name", `{"schemas": {"my-type": {"type": "string"}}}`, oaserrors.ErrConfig},
		{"reserved name", `{"schemas": {"class": {"type": "string"}}}`, oaserrors.ErrConfig},
		{"both keys", `{"schemas": {}, "sharedSchemas": {}}`, oaserrors.ErrConfig},
		{"table not an object", `{"schemas": []}`, oaserrors.ErrConfig},
		{"bad schema", `{"schemas": {"A": "string"}}`, oaserrors.ErrConfig},
		{"syntax", `{"schemas": `, oaserrors.ErrParse},
		{"empty", ``, oaserrors.ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schemas": {"Id": {"type": "string"}}}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, []string{"Id"}, cfg.Names())

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
}

func TestEmpty(t *testing.T) {
	cfg := Empty()
	assert.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Names())
}
