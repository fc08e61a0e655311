package mcp

import "github.com/mark3labs/mcp-go/mcp"

var parseToolDef = mcp.NewTool("resume_parse",
	mcp.WithDescription("Parse raw resume text into a structured record without storing it. Returns the record plus a lint report of missing sections and contact fields."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Raw resume text to parse"),
	),
)

var storeToolDef = mcp.NewTool("resume_store",
	mcp.WithDescription("Parse and store a resume. Returns the new resume's ID and the parsed candidate name."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Raw resume text to parse and store"),
	),
	mcp.WithString("name",
		mcp.Description("Optional archive name; unique among active resumes (case-insensitive)"),
	),
	mcp.WithString("source",
		mcp.Description("Optional origin of the text, e.g. a file path"),
	),
	mcp.WithString("mode",
		mcp.Description("Name collision behavior: \"error\" (default) or \"replace\""),
	),
)

var fetchToolDef = mcp.NewTool("resume_fetch",
	mcp.WithDescription("Fetch a stored resume by ID or name. Returns the structured record and metadata."),
	mcp.WithString("id",
		mcp.Description("Resume ID (mutually exclusive with name)"),
	),
	mcp.WithString("name",
		mcp.Description("Archive name (mutually exclusive with id)"),
	),
	mcp.WithBoolean("include_deleted",
		mcp.Description("Include soft-deleted resumes"),
	),
	mcp.WithBoolean("include_text",
		mcp.Description("Include the raw source text (default true)"),
	),
)

var listToolDef = mcp.NewTool("resume_list",
	mcp.WithDescription("List stored resumes, most recently updated first."),
	mcp.WithNumber("limit",
		mcp.Description("Max results per page (default 20, max 100)"),
	),
	mcp.WithNumber("offset",
		mcp.Description("Pagination offset"),
	),
	mcp.WithBoolean("include_deleted",
		mcp.Description("Include soft-deleted resumes"),
	),
)

var deleteToolDef = mcp.NewTool("resume_delete",
	mcp.WithDescription("Soft-delete a resume by ID or name. The name becomes reusable; the row is recoverable until purged."),
	mcp.WithString("id",
		mcp.Description("Resume ID (mutually exclusive with name)"),
	),
	mcp.WithString("name",
		mcp.Description("Archive name (mutually exclusive with id)"),
	),
)

var purgeToolDef = mcp.NewTool("resume_purge",
	mcp.WithDescription("Permanently remove soft-deleted resumes."),
	mcp.WithNumber("older_than_days",
		mcp.Description("Only purge resumes deleted more than this many days ago"),
	),
)

var exportToolDef = mcp.NewTool("resume_export",
	mcp.WithDescription("Export all resumes to a JSONL file with a header line."),
	mcp.WithString("path",
		mcp.Description("Destination .jsonl path (default: ~/.vitae/exports/resumes-<timestamp>.jsonl)"),
	),
	mcp.WithBoolean("include_deleted",
		mcp.Description("Include soft-deleted resumes"),
	),
)

var siteToolDef = mcp.NewTool("resume_site",
	mcp.WithDescription("Generate a static portfolio website from a stored resume."),
	mcp.WithString("id",
		mcp.Description("Resume ID (mutually exclusive with name)"),
	),
	mcp.WithString("name",
		mcp.Description("Archive name (mutually exclusive with id)"),
	),
	mcp.WithString("out_dir",
		mcp.Description("Output directory (default from config, \"portfolio_website\")"),
	),
)
