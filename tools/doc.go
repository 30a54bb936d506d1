// Package tools implements the BetaHub resource tools exposed over MCP.
//
// Each tool is a pure function of its validated input and the shared API
// client: it builds a query string containing only non-default
// parameters, calls the client, reshapes the upstream JSON through a
// field allow list, and translates client errors into domain errors by
// their HTTP status.
package tools
