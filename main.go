// ABOUTME: Entry point for the CRM dashboard server, terminal UI, and CLI
// ABOUTME: Loads config and seed data, then routes to the requested command
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/crmdash/cli"
	"github.com/harperreed/crmdash/config"
	"github.com/harperreed/crmdash/logging"
	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"go.uber.org/zap"
)

const version = "0.2.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("crmdash version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	formatter, err := stats.NewFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		logger.Fatal("invalid display settings", zap.Error(err))
	}

	s := store.NewDefault()

	switch command {
	case "serve":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := cli.ServeCommand(ctx, s, cfg, logger); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}

	case "tui":
		if err := cli.TUICommand(s, formatter); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := cli.MCPCommand(ctx, s, formatter, logger, version); err != nil {
			logger.Fatal("MCP server failed", zap.Error(err))
		}

	case "list":
		if err := cli.ListCommand(s, formatter, os.Stdout, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "dashboard":
		if err := cli.DashboardCommand(s, formatter, os.Stdout); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "graph":
		if err := cli.GraphCommand(context.Background(), s, formatter, os.Stdout, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "export":
		if err := cli.ExportCommand(s, formatter, os.Stdout, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "config":
		if len(commandArgs) == 0 {
			fmt.Println("Error: config requires a subcommand (show or init)")
			printUsage()
			os.Exit(1)
		}
		switch commandArgs[0] {
		case "show":
			err = cli.ConfigShowCommand(cfg, os.Stdout)
		case "init":
			path := ""
			if len(commandArgs) > 1 {
				path = commandArgs[1]
			}
			err = cli.ConfigInitCommand(path, os.Stdout)
		default:
			fmt.Printf("Unknown config command: %s\n\n", commandArgs[0])
			printUsage()
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`crmdash v%s - CRM admin dashboard

USAGE:
  crmdash [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --addr <addr>          HTTP listen address (default from config, :8080)

COMMANDS:
  serve                  Start the web dashboard
  tui                    Start the terminal dashboard
  mcp                    Start MCP server on stdio
  list <dataset>         Print a filtered table
  dashboard              Print the summary dashboard
  graph [campaign-id]    Generate the campaign to ad graph
  export                 Write a dataset to an .xlsx workbook
  config show|init       Show or initialize configuration

LIST:
  crmdash list leads|customers|campaigns|ads|reports
    --query <text>            Search text
    --status <status>         Status filter (default: All)
    --platform <platform>     Platform filter (ads only)
    --campaign <id>           Campaign filter (ads only)

GRAPH:
  crmdash graph [id]
    --format dot|svg          Output format (default: dot)
    --output <file>           Output file (default: stdout)

EXPORT:
  crmdash export
    --dataset <name>          leads, customers, campaigns, advertisements, reports
    --output <file>           Output file (default: <dataset>.xlsx)

CONFIG:
  crmdash config show         Print the effective configuration
  crmdash config init [path]  Write defaults (default: ~/.config/crmdash/config.json)

ENVIRONMENT:
  CRMDASH_ADDR, LOG_LEVEL, LOG_FORMAT, CRMDASH_LOCALE, CRMDASH_CURRENCY,
  CRMDASH_CORS_ORIGINS, CRMDASH_PHONE_REGION, CRMDASH_API_RATE_LIMIT,
  CRMDASH_TRUST_PROXY
  (also read from .env)

EXAMPLES:
  # Serve the dashboard on port 3000
  crmdash --addr :3000 serve

  # Won leads only
  crmdash list leads --status Won

  # Google Ads performance
  crmdash list ads --platform "Google Ads"

  # Render campaign 3 as SVG
  crmdash graph --format svg --output campaign.svg 3

`, version)
}
