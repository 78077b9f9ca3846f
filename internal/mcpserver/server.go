// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes openapigen capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/openapigen/openapigen"
)

const serverInstructions = `openapigen MCP server: generates TypeScript axios clients from OpenAPI 3.0/3.1 descriptions.

Tools:
- inspect: preview the modules, functions and response statuses a description would produce, without writing files.
- generate: generate the client into output_dir. The directory is purged first.

Configuration: defaults are configurable via OPENAPIGEN_* environment variables set in your MCP client config.

Key settings:
- OPENAPIGEN_CACHE_ENABLED (default: true): disable description caching entirely
- OPENAPIGEN_CACHE_FILE_TTL (default: 15m): cache TTL for local files
- OPENAPIGEN_INSPECT_LIMIT (default: 100): default result limit for inspect
- OPENAPIGEN_REPAIR (default: true): default for the component repair pass

Caching: parsed descriptions are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "openapigen", Version: openapigen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Preview the TypeScript client an OpenAPI 3.0/3.1 description would produce without writing anything. Returns one entry per generated function (method, path, tag, function name, response statuses, bearer auth) plus the module file names and warnings. Filter by tag, method, or path glob (* matches one segment). Use group_by (tag, method, or status) to get distribution counts instead of individual items. Default limit is configurable via OPENAPIGEN_INSPECT_LIMIT.",
	}, handleInspect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate a TypeScript axios client from an OpenAPI 3.0/3.1 description. Writes __shared_schemas__.ts plus one module per operation tag into output_dir, which is purged first. An optional shared-type configuration maps structurally equal schemas onto named shared types. Returns a manifest of generated files and any warnings, such as repaired component references.",
	}, handleGenerate)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.InspectLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.InspectLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is one of the allowed values.
func validateGroupBy(groupBy string, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchPath never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchPath reports whether an API path matches pattern. Patterns without
// glob characters must match exactly.
func matchPath(pattern, path string) bool {
	if pattern == "" {
		return true
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == path
	}
	ok, _ := filepath.Match(pattern, path)
	return ok
}
