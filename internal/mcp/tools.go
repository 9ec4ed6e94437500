package mcp

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the subtag MCP surface.

var tagToolDef = mcp.NewTool("subler_tag",
	mcp.WithDescription("Write metadata atoms to a media file with SublerCLI. Returns the assembled command, captured output, and exit status."),
	mcp.WithString("source",
		mcp.Required(),
		mcp.Description("Path to the media file to tag"),
	),
	mcp.WithString("dest",
		mcp.Description("Destination path for the tagged copy. Defaults to the source path with a .0 suffix before the extension (demo.mp4 -> demo.0.mp4); the default never checks for an existing file."),
	),
	mcp.WithString("media_kind",
		mcp.Description("Media classification: movie (default), music, audiobook, musicvideo, tvshow, booklet, ringtone"),
	),
	mcp.WithBoolean("optimize",
		mcp.Description("Run SublerCLI's optimization pass (default true)"),
	),
	mcp.WithArray("atoms",
		mcp.Description("Metadata atoms to apply, in order. Repeated names accumulate instead of replacing."),
		mcp.Items(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string", "description": "Tag name (see subler_atoms for the known set; arbitrary names pass through)"},
				"value": map[string]any{"type": "string", "description": "Tag value, opaque text"},
			},
			"required": []string{"name"},
		}),
	),
	mcp.WithBoolean("dry_run",
		mcp.Description("Assemble and return the command without running SublerCLI"),
	),
)

var atomsToolDef = mcp.NewTool("subler_atoms",
	mcp.WithDescription("List every known metadata tag name and media kind token."),
)

var historyToolDef = mcp.NewTool("subler_history",
	mcp.WithDescription("List journaled SublerCLI invocations, newest first."),
	mcp.WithString("source",
		mcp.Description("Filter by exact source path"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum items to return (default 20, max 100)"),
	),
	mcp.WithNumber("offset",
		mcp.Description("Items to skip"),
	),
)

var purgeToolDef = mcp.NewTool("subler_purge",
	mcp.WithDescription("Permanently delete journaled invocations."),
	mcp.WithNumber("older_than_days",
		mcp.Description("Only purge records older than this many days; omit to purge everything"),
	),
)
