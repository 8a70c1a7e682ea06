package main

import (
	"fmt"
	"os"

	"github.com/roveo/memberdoc/tools"
	"github.com/spf13/cobra"
)

var emptyText string

var rootCmd = &cobra.Command{
	Use:   "memberdoc",
	Short: "Member heading renderer for generated reference manuals",
	Long: `memberdoc decides the Markdown heading line of a documented member:
its depth, the anchor id derived from the enclosing entity, and whether the
heading is suppressed. It can be used from the command line or as an MCP server.`,
}

var titleCmd = &cobra.Command{
	Use:   "title [file]",
	Short: "Render the heading for a JSON entity descriptor",
	Long: `Read a JSON entity descriptor from a file (or stdin when no file is given)
and print its heading line. Suppressed headings print nothing.

Example descriptor:
  {"name": "Foo", "kind": "type_alias", "parent": {"name": "\"core\"", "kind": "module"}}`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) > 0 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open descriptor: %w", err)
			}
			defer f.Close()
			in = f
		}
		explain, _ := cmd.Flags().GetBool("explain")
		return runTitle(in, cmd.OutOrStdout(), cmd.ErrOrStderr(), explain)
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as MCP server (communicates via stdio)",
	Long: `Run as an MCP server that communicates via stdio.
Exposes tools: member_title.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(emptyText)
	},
}

func init() {
	titleCmd.Flags().Bool("explain", false,
		"Print the decided depth and label to stderr")

	mcpCmd.Flags().StringVar(&emptyText, "empty-text", tools.DefaultEmptyText,
		"Text returned to clients when a heading is suppressed")

	rootCmd.AddCommand(titleCmd)
	rootCmd.AddCommand(mcpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
