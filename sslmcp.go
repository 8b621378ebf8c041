// Package sslmcp provides a knowledge index and MCP retrieval server for
// the RoboCup Small Size League. It crawls the league website, rules, and
// repository listings, splits the content into token-bounded chunks, loads
// them into a persistent vector index, and exposes semantic search tools
// and full-text resources to downstream agents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, langchaingo/, tiktoken/).
package sslmcp
