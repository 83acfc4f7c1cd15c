// Command mcp-tools lists the tools an MCP server advertises, with
// their parameters in declaration order.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/robustcall/mcall/mcp"
	"github.com/robustcall/mcall/schema"
)

const defaultServerURL = "http://localhost:9000/sse"

func main() {
	var (
		configPath = flag.String("config", "", "YAML server config file")
		serverURL  = flag.String("url", "", "server SSE URL (overrides config)")
		timeout    = flag.Duration("timeout", 30*time.Second, "connection timeout")
		showSchema = flag.Bool("schema", false, "print each tool's full input schema")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(*configPath, *serverURL, *timeout, *showSchema); err != nil {
		logger.Error("mcp-tools failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, serverURL string, timeout time.Duration, showSchema bool) error {
	var cfg *mcp.Config
	var err error
	if configPath != "" {
		cfg, err = mcp.LoadConfig(configPath)
		if err != nil {
			return err
		}
	} else {
		url := serverURL
		if url == "" {
			url = os.Getenv(mcp.EnvServerURL)
		}
		if url == "" {
			url = defaultServerURL
		}
		cfg = &mcp.Config{Name: "default", URL: url}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := cfg.Connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	tools, err := client.ListTools(ctx)
	if err != nil {
		return err
	}

	for _, tool := range tools {
		fmt.Printf("%s\n", tool.Name)
		if tool.Description != "" {
			fmt.Printf("    %s\n", tool.Description)
		}
		if order := schema.PropertyOrder(tool.InputSchema); len(order) > 0 {
			fmt.Printf("    parameters: %v\n", order)
		}
		if showSchema && len(tool.InputSchema) > 0 {
			fmt.Printf("    schema: %s\n", tool.InputSchema)
		}
		fmt.Println()
	}
	return nil
}
