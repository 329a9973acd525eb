package mcp

import (
	"context"
	"encoding/json"
	"testing"

	autocopilot "github.com/benfrussell/AutoCopilot"
	"github.com/benfrussell/AutoCopilot/internal/logging"
	"github.com/benfrussell/AutoCopilot/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *autocopilot.Copilot) {
	t.Helper()
	cp := autocopilot.New(autocopilot.WithRoot(domain.NewGroup("Root",
		domain.NewNamedInstruction("greet", domain.Log("hello")),
	)))
	return NewServer(cp, logging.NewNop()), cp
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestGetInstructions(t *testing.T) {
	s, cp := newTestServer(t)

	res, err := s.handleGetInstructions(context.Background(), callRequest("get_instructions", nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	want, err := cp.SerializeInstructions()
	require.NoError(t, err)
	assert.Equal(t, want, resultText(t, res))
}

func TestGetInstructions_YAML(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleGetInstructions(context.Background(), callRequest("get_instructions", map[string]any{"format": "yaml"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "name: greet")
}

func TestGetInstructions_BadFormat(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleGetInstructions(context.Background(), callRequest("get_instructions", map[string]any{"format": "csv"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestGetGraph(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleGetGraph(context.Background(), callRequest("get_graph", nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "graph TD")
}

func TestListActionKinds(t *testing.T) {
	s, _ := newTestServer(t)

	res, err := s.handleListActionKinds(context.Background(), callRequest("list_action_kinds", nil))
	require.NoError(t, err)

	var kinds []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &kinds))
	assert.Len(t, kinds, len(domain.Kinds()))
}

func TestReadInstructionsResource(t *testing.T) {
	s, cp := newTestServer(t)

	contents, err := s.readInstructions(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, InstructionsURI, text.URI)

	want, err := cp.SerializeInstructions()
	require.NoError(t, err)
	assert.Equal(t, want, text.Text)
}
