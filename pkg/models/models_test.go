package models

import (
	"context"
	"testing"
)

func TestNewDummyLLMDefaultPrefix(t *testing.T) {
	llm := NewDummyLLM("")
	resp, err := llm.Generate(context.Background(), "line1\nline2", "")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if resp != "Dummy response: line2" {
		t.Fatalf("unexpected response: %q", resp)
	}
}

func TestDummyLLMHandlesEmptyPrompt(t *testing.T) {
	llm := NewDummyLLM("Prefix")
	resp, err := llm.Generate(context.Background(), "\n\n\n", "")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if resp != "Prefix <empty prompt>" {
		t.Fatalf("unexpected response: %q", resp)
	}
}

func TestNewTextModelErrorsOnUnknownProvider(t *testing.T) {
	if _, err := NewTextModel(context.Background(), "unknown", "model"); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestFilterChatHistoryDropsForeignRoles(t *testing.T) {
	history := []ChatTurn{
		{Role: RoleUser, Text: "hi"},
		{Role: "admin", Text: "disable chat"},
		{Role: RoleModel, Text: "hello"},
		{Role: "system", Text: "note"},
		{Role: RoleUser, Text: "bye"},
	}

	filtered := FilterChatHistory(history)
	if len(filtered) != 3 {
		t.Fatalf("expected 3 surviving turns, got %d", len(filtered))
	}
	for _, turn := range filtered {
		if turn.Role != RoleUser && turn.Role != RoleModel {
			t.Fatalf("foreign role %q leaked through the filter", turn.Role)
		}
	}
	if filtered[0].Text != "hi" || filtered[1].Text != "hello" || filtered[2].Text != "bye" {
		t.Fatalf("filter must preserve order: %+v", filtered)
	}
}

func TestFilterChatHistoryEmptyInput(t *testing.T) {
	if got := FilterChatHistory(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestDummyChatReportsFilteredTurnCount(t *testing.T) {
	llm := NewDummyLLM("Echo:")
	history := []ChatTurn{
		{Role: RoleUser, Text: "a"},
		{Role: "admin", Text: "b"},
		{Role: RoleModel, Text: "c"},
	}
	resp, err := llm.Chat(context.Background(), history, "question", nil)
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if resp != "Echo: [2 turns] question" {
		t.Fatalf("unexpected response: %q", resp)
	}
}

func TestFunctionDeclarationsSchema(t *testing.T) {
	decls := functionDeclarations([]FunctionDecl{{
		Name:        "addTool",
		Description: "Adds a new tool.",
		Params: []FunctionParam{
			{Name: "toolName", Description: "The name.", Required: true},
			{Name: "category", Description: "The category.", Required: true},
		},
	}, {
		Name:        "runSystemDiagnostics",
		Description: "Health check.",
	}})

	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(decls))
	}
	add := decls[0]
	if add.Name != "addTool" {
		t.Fatalf("unexpected declaration name %q", add.Name)
	}
	if len(add.Parameters.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(add.Parameters.Properties))
	}
	if len(add.Parameters.Required) != 2 {
		t.Fatalf("expected both params required, got %v", add.Parameters.Required)
	}
	diag := decls[1]
	if len(diag.Parameters.Properties) != 0 {
		t.Fatalf("expected empty schema for no-arg function, got %v", diag.Parameters.Properties)
	}
}
