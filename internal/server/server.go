// Package server routes decoded JSON-RPC requests: protocol lifecycle,
// capability listing and tool execution against the Fider client.
package server

import (
	"context"
	"encoding/json"
	"log"

	"github.com/fider-contrib/fider-mcp/internal/fider"
	"github.com/fider-contrib/fider-mcp/internal/protocol"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "Fider MCP Server"
	serverVersion   = "1.0.0"
)

// Server dispatches requests by method. It holds no mutable state; the Fider
// client and logger are shared read-only by every invocation.
type Server struct {
	client *fider.Client
	logger *log.Logger
}

// New builds a server around a Fider client.
func New(client *fider.Client, logger *log.Logger) *Server {
	return &Server{client: client, logger: logger}
}

type initializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    capabilities       `json:"capabilities"`
	ServerInfo      mcp.Implementation `json:"serverInfo"`
}

// capabilities declares tools support only.
type capabilities struct {
	Tools struct{} `json:"tools"`
}

type listToolsResult struct {
	Tools []mcp.Tool `json:"tools"`
}

type callToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Handle routes one request. A nil return means no response is written:
// notifications never get one, whatever the method.
func (s *Server) Handle(ctx context.Context, req *protocol.Request) *protocol.Response {
	switch req.Method {
	case "initialize":
		if req.IsNotification() {
			return nil
		}
		return protocol.NewResult(req.ID, initializeResult{
			ProtocolVersion: protocolVersion,
			ServerInfo:      mcp.Implementation{Name: serverName, Version: serverVersion},
		})

	case "initialized":
		s.logger.Printf("client initialized - server ready for requests")
		return nil

	case "tools/list":
		if req.IsNotification() {
			return nil
		}
		return protocol.NewResult(req.ID, listToolsResult{Tools: toolCatalog})

	case "tools/call":
		if req.IsNotification() {
			return nil
		}
		return s.handleToolCall(ctx, req)

	default:
		if req.IsNotification() {
			return nil
		}
		return protocol.NewError(req.ID, mcp.METHOD_NOT_FOUND, "Method not found")
	}
}

// handleToolCall is the single boundary that maps tool failures - unknown
// names, validation errors, upstream HTTP errors - to a protocol error.
func (s *Server) handleToolCall(ctx context.Context, req *protocol.Request) *protocol.Response {
	var params callToolParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return protocol.NewError(req.ID, mcp.INTERNAL_ERROR, "Tool execution failed: invalid params: "+err.Error())
		}
	}

	result, err := s.callTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Printf("tool execution error: %v", err)
		return protocol.NewError(req.ID, mcp.INTERNAL_ERROR, "Tool execution failed: "+err.Error())
	}
	return protocol.NewResult(req.ID, result)
}
