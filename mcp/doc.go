// Package mcp binds the BetaHub tools to a Model Context Protocol host.
//
// The mcp package provides:
// - MCP server implementation over the stdio transport
// - Tool definitions with their input schemas
// - An authentication gate applied to every tool handler
package mcp
