package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocRenders(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info  map[string]string `json:"info"`
		Paths map[string]any    `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "QR Menu API", parsed.Info["title"])
	assert.Contains(t, parsed.Paths, "/api/v1/menu")
	assert.Contains(t, parsed.Paths, "/api/v1/admin/filters/order")
}
