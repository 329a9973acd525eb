package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	autocopilot "github.com/benfrussell/AutoCopilot"
	"github.com/benfrussell/AutoCopilot/internal/presentation/graph"
	"github.com/benfrussell/AutoCopilot/pkg/codec"
	"github.com/benfrussell/AutoCopilot/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// InstructionsURI is the resource exposing the current tree as JSON.
const InstructionsURI = "copilot://instructions"

// Copilot defines what the MCP server needs from the copilot.
type Copilot interface {
	Instructions() *domain.Group
	Encode(w io.Writer, format codec.Format) error
}

// Server wraps a Copilot and exposes it as an MCP Server.
type Server struct {
	copilot   Copilot
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(cp Copilot, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		copilot:   cp,
		logger:    logger,
		mcpServer: server.NewMCPServer("autocopilot-mcp", strings.TrimSpace(autocopilot.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and blocks until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: get_instructions
	s.mcpServer.AddTool(mcp.NewTool("get_instructions",
		mcp.WithDescription("Get the current mission instruction tree."),
		mcp.WithString("format",
			mcp.Description("Output format: json (default) or yaml"),
			mcp.Enum("json", "yaml"),
		),
	), s.handleGetInstructions)

	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get a Mermaid diagram of the instruction tree."),
	), s.handleGetGraph)

	// TOOL: list_action_kinds
	s.mcpServer.AddTool(mcp.NewTool("list_action_kinds",
		mcp.WithDescription("List every action kind with its parameter shape."),
	), s.handleListActionKinds)
}

func (s *Server) handleGetInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := codec.ParseFormat(request.GetString("format", "json"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	if err := s.copilot.Encode(&buf, format); err != nil {
		s.logger.Error("MCP get_instructions: encode failed", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("serialization failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleGetGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(graph.GenerateMermaid(s.copilot.Instructions())), nil
}

func (s *Server) handleListActionKinds(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(domain.ActionCatalog())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("catalog failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: copilot://instructions
	s.mcpServer.AddResource(mcp.NewResource(InstructionsURI, "Current Instruction Tree",
		mcp.WithMIMEType("application/json"),
	), s.readInstructions)
}

func (s *Server) readInstructions(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var buf bytes.Buffer
	if err := s.copilot.Encode(&buf, codec.FormatJSON); err != nil {
		return nil, fmt.Errorf("failed to serialize instructions: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      InstructionsURI,
			MIMEType: "application/json",
			Text:     buf.String(),
		},
	}, nil
}
