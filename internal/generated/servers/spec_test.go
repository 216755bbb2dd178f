package servers_test

import (
	"testing"

	"logistics/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(t.Context()))

	assert.NotNil(t, swagger.Paths.Find("/api/v1/track/{trackingNumber}"))
	assert.NotNil(t, swagger.Paths.Find("/api/v1/payments/{id}/partial-payments"))

	partial := swagger.Components.Schemas["PartialPaymentRequest"]
	require.NotNil(t, partial)
	assert.Contains(t, partial.Value.Properties, "idempotencyKey")
}
