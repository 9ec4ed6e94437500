package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/MattsSe/subtag/internal/config"
	"github.com/MattsSe/subtag/internal/db"
	"github.com/MattsSe/subtag/internal/errors"
	"github.com/MattsSe/subtag/internal/subler"
)

// testSetup creates a temporary database and config for testing.
func testSetup(t *testing.T) (*sql.DB, *config.Config, func()) {
	t.Helper()

	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}

	cfg := config.DefaultConfig()

	cleanup := func() {
		database.Close()
	}

	return database, cfg, cleanup
}

// installFakeCLI points SUBLER_CLI_PATH at a shell script for the test.
func installFakeCLI(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "SublerCli")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake CLI: %v", err)
	}
	t.Setenv(subler.EnvExecutable, path)
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// TestHandleTag tests the subler_tag handler.
func TestHandleTag(t *testing.T) {
	installFakeCLI(t, `echo "Tagged."`)

	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		errorCode string
	}{
		{
			name: "tag with atoms",
			args: map[string]any{
				"source": "demo.mp4",
				"atoms": []any{
					map[string]any{"name": "Genre", "value": "Foo"},
					map[string]any{"name": "Artist", "value": "Bar"},
				},
			},
			wantError: false,
		},
		{
			name: "dry run",
			args: map[string]any{
				"source":  "demo.mp4",
				"dry_run": true,
			},
			wantError: false,
		},
		{
			name:      "missing source",
			args:      map[string]any{},
			wantError: true,
			errorCode: "CONFIGURATION",
		},
		{
			name: "unknown media kind",
			args: map[string]any{
				"source":     "demo.mp4",
				"media_kind": "podcast",
			},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
		{
			name: "blank atom name",
			args: map[string]any{
				"source": "demo.mp4",
				"atoms": []any{
					map[string]any{"name": " ", "value": "x"},
				},
			},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := makeRequest(tt.args)
			result, err := h.HandleTag(ctx, req)

			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			if tt.wantError {
				if !result.IsError {
					t.Errorf("expected error result, got success")
				}
				if tt.errorCode != "" {
					assertErrorCode(t, result, tt.errorCode)
				}
			} else {
				if result.IsError {
					t.Errorf("expected success, got error: %v", extractErrorMessage(result))
				}
			}
		})
	}
}

// TestHandleTagDryRunShape checks the dry-run payload contract.
func TestHandleTagDryRunShape(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	req := makeRequest(map[string]any{
		"source":     "episode.mkv",
		"media_kind": "tvshow",
		"dry_run":    true,
		"atoms": []any{
			map[string]any{"name": "TV Show", "value": "Foo"},
		},
	})
	result, err := h.HandleTag(ctx, req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	output := parseOutput(t, result)
	if output["dry_run"] != true {
		t.Error("expected dry_run=true in output")
	}
	if output["dest"] != "episode.0.mkv" {
		t.Errorf("dest = %v, want episode.0.mkv", output["dest"])
	}
	if output["media_kind"] != "TV Show" {
		t.Errorf("media_kind = %v, want TV Show", output["media_kind"])
	}
	args, _ := output["args"].([]any)
	if len(args) == 0 || args[0] != "tag" {
		t.Errorf("args = %v, want leading tag verb", args)
	}
	if _, ok := output["id"]; ok && output["id"] != "" {
		t.Error("dry run must not produce a journal ID")
	}
}

// TestHandleAtoms tests the subler_atoms discovery handler.
func TestHandleAtoms(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	result, err := h.HandleAtoms(ctx, makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	output := parseOutput(t, result)
	tags, _ := output["metadata_tags"].([]any)
	if len(tags) == 0 {
		t.Fatal("no metadata tags in output")
	}
	kinds, _ := output["media_kinds"].([]any)
	if len(kinds) != 7 {
		t.Errorf("media kinds = %d, want 7", len(kinds))
	}
}

// TestHandleHistory tests the subler_history handler.
func TestHandleHistory(t *testing.T) {
	installFakeCLI(t, `exit 0`)

	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	// Journal two runs first
	for _, src := range []string{"a.mp4", "b.mp4"} {
		result, err := h.HandleTag(ctx, makeRequest(map[string]any{"source": src}))
		if err != nil {
			t.Fatalf("setup tag failed: %v", err)
		}
		if result.IsError {
			t.Fatalf("setup tag failed: %v", extractErrorMessage(result))
		}
	}

	tests := []struct {
		name      string
		args      map[string]any
		wantItems int
		wantError bool
		errorCode string
	}{
		{
			name:      "list all",
			args:      map[string]any{},
			wantItems: 2,
		},
		{
			name:      "source filter",
			args:      map[string]any{"source": "a.mp4"},
			wantItems: 1,
		},
		{
			name:      "negative limit",
			args:      map[string]any{"limit": -1},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.HandleHistory(ctx, makeRequest(tt.args))
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			if tt.wantError {
				if !result.IsError {
					t.Errorf("expected error result, got success")
				}
				if tt.errorCode != "" {
					assertErrorCode(t, result, tt.errorCode)
				}
				return
			}

			output := parseOutput(t, result)
			items, _ := output["items"].([]any)
			if len(items) != tt.wantItems {
				t.Errorf("got %d items, want %d", len(items), tt.wantItems)
			}
		})
	}
}

// TestHandlePurge tests the subler_purge handler.
func TestHandlePurge(t *testing.T) {
	installFakeCLI(t, `exit 0`)

	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	h := NewHandlers(database, cfg)
	ctx := context.Background()

	tagResult, err := h.HandleTag(ctx, makeRequest(map[string]any{"source": "demo.mp4"}))
	if err != nil {
		t.Fatalf("setup tag failed: %v", err)
	}
	if tagResult.IsError {
		t.Fatalf("setup tag failed: %v", extractErrorMessage(tagResult))
	}

	result, err := h.HandlePurge(ctx, makeRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	output := parseOutput(t, result)
	if purged, _ := output["purged"].(float64); purged != 1 {
		t.Errorf("purged = %v, want 1", output["purged"])
	}

	// Negative retention is rejected
	result, err = h.HandlePurge(ctx, makeRequest(map[string]any{"older_than_days": -3}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result for negative retention")
	}
	assertErrorCode(t, result, "INVALID_REQUEST")
}

func TestServerRegistration(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	s := NewServer(database, cfg, "test")
	tools := s.ListTools()
	if tools == nil {
		t.Fatal("expected tools to be registered, got nil")
	}

	expectedTools := []string{
		"subler_tag",
		"subler_atoms",
		"subler_history",
		"subler_purge",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("registered tool count = %d, want %d", len(tools), len(expectedTools))
	}

	for _, name := range expectedTools {
		if _, ok := tools[name]; !ok {
			t.Errorf("missing registered tool: %s", name)
		}
	}
}

func TestServerRegistration_WithDisabledTools(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	cfg.DisabledTools = []string{"subler_purge"}
	s := NewServer(database, cfg, "test")
	tools := s.ListTools()

	if len(tools) != 3 {
		t.Errorf("registered tool count = %d, want 3", len(tools))
	}
	if _, ok := tools["subler_purge"]; ok {
		t.Error("disabled tool should not be registered")
	}
	if _, ok := tools["subler_tag"]; !ok {
		t.Error("core tool subler_tag should be registered")
	}
}

func TestServerRegistration_AllToolsDisabled(t *testing.T) {
	database, cfg, cleanup := testSetup(t)
	defer cleanup()

	cfg.DisabledTools = AllToolNames()
	s := NewServer(database, cfg, "test")
	tools := s.ListTools()

	if len(tools) != 0 {
		t.Errorf("registered tool count = %d, want 0 (all disabled)", len(tools))
	}
}

func TestValidateDisabledTools(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantLen int
	}{
		{
			name:    "all valid",
			input:   []string{"subler_purge", "subler_history"},
			wantLen: 0,
		},
		{
			name:    "one unknown",
			input:   []string{"subler_purge", "fake_tool"},
			wantLen: 1,
		},
		{
			name:    "empty list",
			input:   []string{},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unknown := ValidateDisabledTools(tt.input)
			if len(unknown) != tt.wantLen {
				t.Errorf("ValidateDisabledTools() returned %d unknown, want %d", len(unknown), tt.wantLen)
			}
		})
	}
}

func TestAllToolNames(t *testing.T) {
	names := AllToolNames()

	if len(names) != 4 {
		t.Errorf("AllToolNames() returned %d names, want 4", len(names))
	}

	unknown := ValidateDisabledTools(names)
	if len(unknown) != 0 {
		t.Errorf("AllToolNames() returned invalid names: %v", unknown)
	}
}

func TestErrorResult_InternalDoesNotExposeDetails(t *testing.T) {
	r := errorResult(errors.NewInternal(fmt.Errorf("sql error: open /tmp/secret.db: permission denied")))
	if !r.IsError {
		t.Fatal("expected IsError=true")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(r.Content[0].(mcp.TextContent).Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal error payload: %v", err)
	}
	errObj := payload["error"].(map[string]any)

	if errObj["code"] != string(errors.ErrInternal) {
		t.Fatalf("code=%v, want %v", errObj["code"], errors.ErrInternal)
	}
	if _, ok := errObj["details"]; ok {
		t.Fatal("expected INTERNAL errors to omit details")
	}
}

func TestErrorResult_NonInternalIncludesDetails(t *testing.T) {
	r := errorResult(errors.NewLaunch("/usr/local/bin/SublerCli", fmt.Errorf("no such file")))
	if !r.IsError {
		t.Fatal("expected IsError=true")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(r.Content[0].(mcp.TextContent).Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal error payload: %v", err)
	}
	errObj := payload["error"].(map[string]any)

	if errObj["code"] != string(errors.ErrLaunch) {
		t.Fatalf("code=%v, want %v", errObj["code"], errors.ErrLaunch)
	}
	if _, ok := errObj["details"]; !ok {
		t.Fatal("expected non-INTERNAL errors to include details when present")
	}
}

func TestDecodeArgsRejectsWrongTypes(t *testing.T) {
	req := makeRequest(map[string]any{
		"source": 42,
	})
	if _, err := decodeArgs[TagRequest](req); err == nil {
		t.Error("expected decode error for non-string source")
	}
}

// TestJournalToolsWithNilDB covers the disabled-journal server: main leaves
// the database nil when history_disabled is set, and the journal-backed
// tools must refuse cleanly instead of touching the nil handle.
func TestJournalToolsWithNilDB(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.HistoryDisabled = true

	h := NewHandlers(nil, cfg)
	ctx := context.Background()

	t.Run("history refuses", func(t *testing.T) {
		result, err := h.HandleHistory(ctx, makeRequest(map[string]any{}))
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected error result with no journal")
		}
		assertErrorCode(t, result, "INVALID_REQUEST")
	})

	t.Run("purge refuses", func(t *testing.T) {
		result, err := h.HandlePurge(ctx, makeRequest(map[string]any{}))
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected error result with no journal")
		}
		assertErrorCode(t, result, "INVALID_REQUEST")
	})

	t.Run("atoms still works", func(t *testing.T) {
		result, err := h.HandleAtoms(ctx, makeRequest(map[string]any{}))
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if result.IsError {
			t.Fatalf("atoms should not need the journal: %v", extractErrorMessage(result))
		}
	})

	t.Run("tag still works", func(t *testing.T) {
		installFakeCLI(t, `exit 0`)

		result, err := h.HandleTag(ctx, makeRequest(map[string]any{"source": "demo.mp4"}))
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		output := parseOutput(t, result)
		if id, ok := output["id"]; ok && id != "" {
			t.Errorf("expected no journal ID, got %v", id)
		}
	})
}

// Helper functions

// parseOutput extracts and unmarshals the JSON output from an MCP result.
func parseOutput(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractErrorMessage(result))
	}
	var output map[string]any
	if err := json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &output); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return output
}

func assertErrorCode(t *testing.T, result *mcp.CallToolResult, expectedCode string) {
	t.Helper()

	if len(result.Content) == 0 {
		t.Errorf("no content in error result")
		return
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Errorf("content is not TextContent")
		return
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Errorf("failed to unmarshal error payload: %v", err)
		return
	}

	errorObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Errorf("no error object in payload")
		return
	}

	code, ok := errorObj["code"].(string)
	if !ok {
		t.Errorf("no code in error object")
		return
	}

	if code != expectedCode {
		t.Errorf("got error code %q, want %q", code, expectedCode)
	}
}

func extractErrorMessage(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return "<no content>"
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return "<not text content>"
	}

	return text.Text
}
