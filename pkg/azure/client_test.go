package azure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abpatra/agentbridge/pkg/config"
)

func testClient(debug bool) *Client {
	return NewClient(config.AzureConfig{
		Endpoint:        "https://example.services.ai.azure.com/api/projects/demo",
		APIKey:          "test-key",
		WorkflowName:    "SelfCorrecting-Workflow",
		WorkflowVersion: "10",
		DebugMode:       debug,
	})
}

func TestResponseParamsDebugMetadata(t *testing.T) {
	params := testClient(true).responseParams("conv_1", "hi")
	assert.Equal(t, "1", params.Metadata[debugMetadataKey])

	params = testClient(false).responseParams("conv_1", "hi")
	assert.Nil(t, params.Metadata)
}
