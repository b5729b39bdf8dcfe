package openapi_test

import (
	"encoding/json"
	"testing"

	"logistics/internal/adapters/in/http/openapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := openapi.GetSwagger()
	require.NoError(t, err)

	for _, path := range []string{
		"/api/v1/orders",
		"/api/v1/orders/{id}/assignment",
		"/api/v1/vehicles/{plate}/orders",
		"/api/v1/notifications/ws",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	assign := doc.Paths.Find("/api/v1/orders/{id}/assignment")
	require.NotNil(t, assign)
	assert.Equal(t, "assignVehicle", assign.Post.OperationID)
	assert.Equal(t, "unassignVehicle", assign.Delete.OperationID)
}

func TestSpecJSON(t *testing.T) {
	raw, err := openapi.SpecJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}
