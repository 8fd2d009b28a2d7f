package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AZURE_PROJECT_ENDPOINT", "https://example.services.ai.azure.com/api/projects/demo")
	t.Setenv("AZURE_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "SelfCorrecting-Workflow", cfg.Azure.WorkflowName)
	assert.Equal(t, "10", cfg.Azure.WorkflowVersion)
	assert.True(t, cfg.Azure.DebugMode)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 16, cfg.Server.StreamBuffer)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AZURE_PROJECT_ENDPOINT", "https://example.services.ai.azure.com/api/projects/demo")
	t.Setenv("AGENT_WORKFLOW_NAME", "Other-Workflow")
	t.Setenv("AGENT_WORKFLOW_VERSION", "3")
	t.Setenv("AGENT_DEBUG_MODE", "false")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")
	t.Setenv("STREAM_BUFFER", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Other-Workflow", cfg.Azure.WorkflowName)
	assert.Equal(t, "3", cfg.Azure.WorkflowVersion)
	assert.False(t, cfg.Azure.DebugMode)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.AllowedOrigins)
	// A nonsensical buffer size is clamped, not rejected.
	assert.Equal(t, 1, cfg.Server.StreamBuffer)
}

func TestLoadRequiresEndpoint(t *testing.T) {
	t.Setenv("AZURE_PROJECT_ENDPOINT", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AZURE_PROJECT_ENDPOINT")
}
