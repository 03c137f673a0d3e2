package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "stringlang API", parsed["info"].(map[string]any)["title"])

	paths := parsed["paths"].(map[string]any)
	for _, p := range []string{"/analyze", "/analyze/batch", "/analyses/{id}", "/blocks/{name}/count", "/profiles"} {
		assert.Contains(t, paths, p)
	}
}
