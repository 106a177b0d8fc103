package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lettergrade/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server exposing the scorer as tools",
	Long: `Start a Model Context Protocol stdio server so editors and agents can
score letters in-process. The server exposes two tools:

  analyse_cover_letter  Full analysis of a letter (text, optional role and company)
  list_roles            Role names accepted by analyse_cover_letter

Example MCP client configuration:
  {"mcpServers":{"lettergrade":{"command":"lettergrade","args":["mcp"]}}}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	srv := mcp.NewServer(env.engine, env.cfg.MaxInputChars, appVersion, env.log)
	return srv.Run(cmd.Context(), os.Stdin, os.Stdout)
}
