// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server on stdio for desktop agent integration
package cli

import (
	"context"

	"github.com/harperreed/crmdash/handlers"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(ctx context.Context, s *store.Store, f *stats.Formatter, logger *zap.Logger, version string) error {
	logger.Info("starting MCP server", zap.String("version", version))

	server := handlers.NewServer(s, f, version)

	// Run server on stdio transport
	return server.Run(ctx, &mcp.StdioTransport{})
}
