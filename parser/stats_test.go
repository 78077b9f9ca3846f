package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDocumentStats(t *testing.T) {
	assert.Equal(t, DocumentStats{}, GetDocumentStats(nil))

	result, err := ParseWithOptions(WithBytes([]byte(`openapi: 3.0.3
info: {title: t, version: "1"}
paths:
  /a:
    get:
      responses: {}
  /b:
    put:
      responses: {}
    patch:
      responses: {}
components:
  schemas:
    A: {type: string}
    B: {type: integer}
`)))
	require.NoError(t, err)
	assert.Equal(t, DocumentStats{PathCount: 2, OperationCount: 3, SchemaCount: 2}, GetDocumentStats(result.Document))
}
