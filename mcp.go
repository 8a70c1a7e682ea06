package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/roveo/memberdoc/membertitle"
	"github.com/roveo/memberdoc/reflection"
	"github.com/roveo/memberdoc/tools"
)

// serverConfig holds the server configuration
var serverConfig *tools.Config

func runTitle(in io.Reader, out, errOut io.Writer, explain bool) error {
	entity, err := reflection.Decode(in)
	if err != nil {
		return err
	}

	title, ok := membertitle.Heading(entity)
	if explain {
		fmt.Fprintf(errOut, "%s suppressed=%t\n", title.Explain(), !ok)
	}
	if !ok {
		return nil
	}

	_, err = fmt.Fprintln(out, title.String())
	return err
}

func runMCPServer(emptyText string) error {
	serverConfig = &tools.Config{
		EmptyText: emptyText,
	}

	// stdout carries the MCP transport
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s := mcp.NewServer(&mcp.Implementation{
		Name:    "memberdoc",
		Version: "1.0.0",
	}, nil)

	// Register member_title tool
	mcp.AddTool(s, tools.MemberTitleTool(), tools.MemberTitleHandler(serverConfig))

	logger.Info("starting MCP server", "transport", "stdio", "tools", []string{"member_title"})
	return s.Run(context.Background(), &mcp.StdioTransport{})
}
