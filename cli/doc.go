// Package cli provides the command line interface for the BetaHub MCP
// server: credential resolution, startup validation and the stdio serve
// loop.
package cli
