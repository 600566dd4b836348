package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/akolanti/ProposalFeedback/internal/api"
	"github.com/akolanti/ProposalFeedback/internal/domain/commonModels"
	"github.com/akolanti/ProposalFeedback/internal/domain/feedbackModel"
	"github.com/google/go-cmp/cmp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mockService struct {
	received feedbackModel.Submission
}

func (m *mockService) Assemble(ctx context.Context, submission feedbackModel.Submission) feedbackModel.FeedbackRecord {
	m.received = submission
	return feedbackModel.FeedbackRecord{
		Missing:      feedbackModel.RubricResult{Missing: []feedbackModel.RubricMiss{}},
		Snippets:     []commonModels.Snippet{{DocumentID: "notice.txt", Text: "CCTV 단속", Score: 1}},
		FeedbackText: "좋은 제안이에요",
		Outcome:      feedbackModel.OutcomeGenerated,
	}
}

func (m *mockService) Documents() []string {
	return []string{"notice.txt", "guide.pdf"}
}

func connect(t *testing.T, service *mockService) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := New(service, "test")
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func decodeStructured(t *testing.T, result *mcp.CallToolResult, target any) {
	t.Helper()
	if result.IsError {
		t.Fatalf("tool returned error: %+v", result.Content)
	}
	raw, err := json.Marshal(result.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
}

func TestListTools(t *testing.T) {
	session := connect(t, &mockService{})
	result, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range result.Tools {
		names[tool.Name] = true
	}
	if !names[ToolRequestFeedback] || !names[ToolListReferences] {
		t.Errorf("tools = %v", names)
	}
}

func TestRequestFeedbackTool(t *testing.T) {
	service := &mockService{}
	session := connect(t, service)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: ToolRequestFeedback,
		Arguments: map[string]any{
			"problem":  "학교 앞 불법주정차",
			"proposal": "단속 CCTV 설치",
			"mode":     "cause",
		},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}

	var got api.FeedbackResponse
	decodeStructured(t, result, &got)
	if !got.Ok || got.Feedback != "좋은 제안이에요" || len(got.Snippets) != 1 {
		t.Errorf("response = %+v", got)
	}

	want := feedbackModel.Submission{Problem: "학교 앞 불법주정차", Proposal: "단속 CCTV 설치", Mode: feedbackModel.ModeCause}
	if diff := cmp.Diff(want, service.received); diff != "" {
		t.Errorf("submission mismatch (-want +got):\n%s", diff)
	}
}

func TestListReferencesTool(t *testing.T) {
	session := connect(t, &mockService{})
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: ToolListReferences, Arguments: map[string]any{}})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}

	var got ListReferencesOutput
	decodeStructured(t, result, &got)
	if diff := cmp.Diff([]string{"notice.txt", "guide.pdf"}, got.Documents); diff != "" {
		t.Errorf("documents mismatch (-want +got):\n%s", diff)
	}
}
