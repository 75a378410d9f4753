// Package mcp exposes the sanitization pipeline as an MCP tool so agent
// hosts can sanitize model graphs over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/datashield"
	"github.com/aretw0/datashield/pkg/config"
	"github.com/aretw0/datashield/pkg/domain"
)

// RunResponse is the structured result of a sanitize tool call.
type RunResponse struct {
	Model   *domain.Node     `json:"model" jsonschema_description:"The sanitized model graph"`
	Report  *domain.Report   `json:"report,omitempty" jsonschema_description:"Aggregated feedback, absent when nothing matched"`
	Stats   domain.PassStats `json:"stats" jsonschema_description:"Pass diagnostics"`
	Message string           `json:"message" jsonschema_description:"Run summary"`
}

// Server wraps the sanitization pipeline and exposes it as an MCP server.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer() *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("datashield-mcp", strings.TrimSpace(datashield.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	sanitizeTool := mcp.NewTool("sanitize_model",
		mcp.WithDescription("Sanitize parameter data on a model graph: remove parameters by prefix or pattern, or anonymize email addresses in values."),
		mcp.WithString("model", mcp.Required(), mcp.Description("The model graph as a JSON object")),
		mcp.WithString("mode", mcp.Required(), mcp.Description("Sanitization mode: prefix, pattern, or anonymization")),
		mcp.WithString("parameter_input", mcp.Description("Prefix or pattern to match (ignored for anonymization). Wrap in slashes for regex, e.g. /^foo_/i")),
		mcp.WithBoolean("strict_mode", mcp.Description("Case-sensitive matching when true")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(sanitizeTool, mcp.NewStructuredToolHandler(s.handleSanitize))
}

func (s *Server) handleSanitize(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	modelStr, _ := args["model"].(string)
	if modelStr == "" {
		return RunResponse{}, fmt.Errorf("model argument is required")
	}

	var cfg config.Config
	if err := mapstructure.Decode(args, &cfg); err != nil {
		return RunResponse{}, fmt.Errorf("invalid config arguments: %w", err)
	}

	var root domain.Node
	if err := json.Unmarshal([]byte(modelStr), &root); err != nil {
		return RunResponse{}, fmt.Errorf("undecodable model: %w", err)
	}

	result, err := datashield.Sanitize(&root, cfg)
	if err != nil {
		return RunResponse{}, fmt.Errorf("sanitize failed: %w", err)
	}

	return RunResponse{
		Model:   &root,
		Report:  result.Report,
		Stats:   result.Stats,
		Message: result.Message,
	}, nil
}
