// Package domain defines MCP tool schemas and handlers for dice rolling.
//
// Handlers validate input through the core dice package and report failures
// as domain errors so callers can branch on error codes.
package domain
