package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"

	"github.com/betahubio/betahub-mcp/auth"
	"github.com/betahubio/betahub-mcp/tools"
)

// InitTools builds the full tool table, every handler gated on the
// presence of a validated session.
func InitTools(session *auth.Session, ts *tools.Toolset) []server.ServerTool {
	guard := authGuard(session)

	list := []server.ServerTool{}
	list = append(list, newServerTool(listProjectsTool(ts)))
	list = append(list, newServerTool(listSuggestionsTool(ts)))
	list = append(list, newServerTool(searchSuggestionsTool(ts)))
	list = append(list, newServerTool(listIssuesTool(ts)))
	list = append(list, newServerTool(searchIssuesTool(ts)))
	list = append(list, newServerTool(listIssueTagsTool(ts)))
	list = append(list, newServerTool(listReleasesTool(ts)))

	for i := range list {
		list[i].Handler = guard(list[i].Handler)
	}
	return list
}

// authGuard rejects tool calls issued without a validated session,
// before any tool logic runs.
func authGuard(session *auth.Session) func(server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if session == nil {
				return mcp.NewToolResultError("Authentication required"), nil
			}
			return next(ctx, req)
		}
	}
}

// decodeArgs maps raw tool arguments onto a typed input struct. JSON
// numbers arrive as float64, so weakly typed decoding is required for
// the int fields.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}

// toolErrorMessage extracts the user-visible message from a tool error.
func toolErrorMessage(err error) string {
	if msg := failure.MessageOf(err); msg != "" {
		return msg.String()
	}
	return err.Error()
}

func listProjectsTool(ts *tools.Toolset) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool(
			"listProjects",
			mcp.WithDescription("List all projects accessible to the authenticated user"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			text, err := ts.ListProjects(ctx)
			if err != nil {
				return mcp.NewToolResultError(toolErrorMessage(err)), nil
			}
			return mcp.NewToolResultText(text), nil
		}
}

func listSuggestionsTool(ts *tools.Toolset) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool(
			"listSuggestions",
			mcp.WithDescription("List feature requests (suggestions) from a BetaHub project"),
			mcp.WithString("projectId", mcp.Required(), mcp.Description("The project ID to fetch feature requests from")),
			mcp.WithString("sort", mcp.Description("Sort order for feature requests: top, new, all, moderation, rejected, muted, duplicates (default: top)")),
			mcp.WithNumber("page", mcp.Description("Page number for pagination (default: 1)")),
			mcp.WithNumber("limit", mcp.Description("Number of items per page (max 25, default: 25)")),
			mcp.WithString("status", mcp.Description("Filter feature requests by status: pending, approved, rejected, in_progress, completed, duplicate")),
			mcp.WithString("createdAfter", mcp.Description("Filter feature requests created after this date (ISO 8601, e.g. \"2024-01-01\" or \"2024-01-01T10:00:00Z\")")),
			mcp.WithString("createdBefore", mcp.Description("Filter feature requests created before this date (ISO 8601)")),
			mcp.WithString("updatedAfter", mcp.Description("Filter feature requests updated after this date (ISO 8601)")),
			mcp.WithString("updatedBefore", mcp.Description("Filter feature requests updated before this date (ISO 8601)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var in tools.ListSuggestionsInput
			if err := decodeArgs(req.Params.Arguments, &in); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			text, err := ts.ListSuggestions(ctx, in)
			if err != nil {
				return mcp.NewToolResultError(toolErrorMessage(err)), nil
			}
			return mcp.NewToolResultText(text), nil
		}
}

func searchSuggestionsTool(ts *tools.Toolset) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool(
			"searchSuggestions",
			mcp.WithDescription("Search for feature requests (suggestions) within a BetaHub project. Supports text search and scoped ID lookup."),
			mcp.WithString("projectId", mcp.Required(), mcp.Description("The project ID to search feature requests in")),
			mcp.WithString("query", mcp.Description("The search query string to match against feature request titles and descriptions")),
			mcp.WithString("skipIds", mcp.Description("Comma-separated list of feature request IDs to exclude from results")),
			mcp.WithBoolean("partial", mcp.Description("When set to true, returns limited results optimized for autocomplete")),
			mcp.WithString("scopedId", mcp.Description("Instead of searching, find a specific feature request by its scoped ID (e.g. \"123\" or \"fr-456\")")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var in tools.SearchInput
			if err := decodeArgs(req.Params.Arguments, &in); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			text, err := ts.SearchSuggestions(ctx, in)
			if err != nil {
				return mcp.NewToolResultError(toolErrorMessage(err)), nil
			}
			return mcp.NewToolResultText(text), nil
		}
}

func listIssuesTool(ts *tools.Toolset) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool(
			"listIssues",
			mcp.WithDescription("List issues (bug reports) from a BetaHub project"),
			mcp.WithString("projectId", mcp.Required(), mcp.Description("The project ID to fetch issues from")),
			mcp.WithString("status", mcp.Description("Filter issues by status: new, in_progress, needs_more_info, resolved, closed, wont_fix")),
			mcp.WithString("priority", mcp.Description("Filter issues by priority: low, medium, high, critical")),
			mcp.WithNumber("page", mcp.Description("Page number for pagination (default: 1)")),
			mcp.WithNumber("perPage", mcp.Description("Number of issues per page (max 100, default: 20)")),
			mcp.WithString("createdAfter", mcp.Description("Filter issues created after this date (ISO 8601)")),
			mcp.WithString("createdBefore", mcp.Description("Filter issues created before this date (ISO 8601)")),
			mcp.WithString("updatedAfter", mcp.Description("Filter issues updated after this date (ISO 8601)")),
			mcp.WithString("updatedBefore", mcp.Description("Filter issues updated before this date (ISO 8601)")),
			mcp.WithString("tagIds", mcp.Description("Filter issues by tag IDs (comma-separated, e.g. \"1,2,3\"). Use the listIssueTags tool to discover available tag IDs.")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var in tools.ListIssuesInput
			if err := decodeArgs(req.Params.Arguments, &in); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			text, err := ts.ListIssues(ctx, in)
			if err != nil {
				return mcp.NewToolResultError(toolErrorMessage(err)), nil
			}
			return mcp.NewToolResultText(text), nil
		}
}

func searchIssuesTool(ts *tools.Toolset) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool(
			"searchIssues",
			mcp.WithDescription("Search for issues (bug reports) within a BetaHub project. Supports text search and scoped ID lookup."),
			mcp.WithString("projectId", mcp.Required(), mcp.Description("The project ID to search issues in")),
			mcp.WithString("query", mcp.Description("The search query string to match against issue titles and descriptions")),
			mcp.WithString("skipIds", mcp.Description("Comma-separated list of issue IDs to exclude from results")),
			mcp.WithBoolean("partial", mcp.Description("When set to true, returns limited results optimized for autocomplete")),
			mcp.WithString("scopedId", mcp.Description("Instead of searching, find a specific issue by its scoped ID (e.g. \"123\" or \"g-456\")")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var in tools.SearchInput
			if err := decodeArgs(req.Params.Arguments, &in); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			text, err := ts.SearchIssues(ctx, in)
			if err != nil {
				return mcp.NewToolResultError(toolErrorMessage(err)), nil
			}
			return mcp.NewToolResultText(text), nil
		}
}

func listIssueTagsTool(ts *tools.Toolset) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool(
			"listIssueTags",
			mcp.WithDescription("List all issue tags from a BetaHub project. Tags are used to categorize and filter issues."),
			mcp.WithString("projectId", mcp.Required(), mcp.Description("The project ID to fetch issue tags from")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var in tools.ListIssueTagsInput
			if err := decodeArgs(req.Params.Arguments, &in); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			text, err := ts.ListIssueTags(ctx, in)
			if err != nil {
				return mcp.NewToolResultError(toolErrorMessage(err)), nil
			}
			return mcp.NewToolResultText(text), nil
		}
}

func listReleasesTool(ts *tools.Toolset) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool(
			"listReleases",
			mcp.WithDescription("List all releases for a BetaHub project"),
			mcp.WithString("projectId", mcp.Required(), mcp.Description("The project ID to fetch releases from")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var in tools.ListReleasesInput
			if err := decodeArgs(req.Params.Arguments, &in); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			text, err := ts.ListReleases(ctx, in)
			if err != nil {
				return mcp.NewToolResultError(toolErrorMessage(err)), nil
			}
			return mcp.NewToolResultText(text), nil
		}
}
