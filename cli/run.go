package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/betahubio/betahub-mcp/api"
	"github.com/betahubio/betahub-mcp/auth"
	"github.com/betahubio/betahub-mcp/config"
	"github.com/betahubio/betahub-mcp/log"
	"github.com/betahubio/betahub-mcp/mcp"
	"github.com/betahubio/betahub-mcp/tools"
)

var (
	// Command line flags
	token tokenFlag

	// Root command
	rootCmd = &cobra.Command{
		Use:           "betahub-mcp",
		Short:         "BetaHub MCP server",
		SilenceErrors: true,
		Long: `betahub-mcp exposes the BetaHub REST API as Model Context Protocol
tools over stdio. It authenticates with a Personal Access Token
(pat-xxxxx) or Project Auth Token (tkn-xxxxx) supplied via --token or
the ` + config.TokenEnvVar + ` environment variable and validates it
against the API before any tool is served.`,
		RunE: runRoot,
	}

	// Version information
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("betahub-mcp version %s\n", Version)
			fmt.Printf("  commit: %s\n", Commit)
			fmt.Printf("  built:  %s\n", Date)
		},
	}
)

func init() {
	rootCmd.Flags().Var(&token, "token", "BetaHub API token (overrides "+config.TokenEnvVar+")")
	rootCmd.AddCommand(versionCmd)
}

// Run executes the main CLI functionality
func Run() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	session, err := auth.Initialize(cmd.Context(), cfg, token.Value)
	if err != nil {
		return err
	}

	client := api.New(cfg, session)
	toolset := tools.New(cfg, client)

	go handleInterrupt()

	log.Info("BetaHub MCP Server is running")
	return mcp.NewServer(session, toolset).Run()
}

// handleInterrupt exits cleanly on SIGINT; the stdio transport has no
// shutdown hook of its own.
func handleInterrupt() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
	log.Info("Shutting down BetaHub MCP Server")
	os.Exit(0)
}
