package mcpserver

import (
	"context"
	"net/http"

	"github.com/akolanti/ProposalFeedback/internal/adapter"
	"github.com/akolanti/ProposalFeedback/internal/api"
	"github.com/akolanti/ProposalFeedback/internal/rag"
	"github.com/akolanti/ProposalFeedback/pkg/logger_i"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName          = "proposal-feedback"
	ToolRequestFeedback = "request_feedback"
	ToolListReferences  = "list_references"
)

type FeedbackInput struct {
	Problem  string `json:"problem,omitempty" jsonschema:"the problem the student noticed"`
	Proposal string `json:"proposal,omitempty" jsonschema:"what the student proposes"`
	Reason   string `json:"reason,omitempty" jsonschema:"why the proposal helps"`
	Mode     string `json:"mode,omitempty" jsonschema:"default or cause"`
}

type ListReferencesInput struct{}

type ListReferencesOutput struct {
	Documents []string `json:"documents"`
}

type tools struct {
	service rag.Service
	logger  *logger_i.Logger
}

// New exposes the feedback pipeline as MCP tools.
func New(service rag.Service, version string) *mcp.Server {
	t := &tools{service: service, logger: logger_i.NewLogger("MCP")}
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolRequestFeedback,
		Description: "Check a civic proposal against the rubric, find matching reference paragraphs and return AI feedback.",
	}, t.requestFeedback)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolListReferences,
		Description: "List the reference documents feedback is grounded on.",
	}, t.listReferences)

	return server
}

// Handler serves the server over streamable HTTP.
func Handler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

func (t *tools) requestFeedback(ctx context.Context, _ *mcp.CallToolRequest, input FeedbackInput) (*mcp.CallToolResult, api.FeedbackResponse, error) {
	record := t.service.Assemble(ctx, adapter.ToSubmission(api.FeedbackRequest{
		Problem:  input.Problem,
		Proposal: input.Proposal,
		Reason:   input.Reason,
		Mode:     input.Mode,
	}))
	t.logger.Info("Feedback tool call", "outcome", record.Outcome)
	return nil, adapter.ToFeedbackResponse(record), nil
}

func (t *tools) listReferences(ctx context.Context, _ *mcp.CallToolRequest, _ ListReferencesInput) (*mcp.CallToolResult, ListReferencesOutput, error) {
	return nil, ListReferencesOutput{Documents: t.service.Documents()}, nil
}
