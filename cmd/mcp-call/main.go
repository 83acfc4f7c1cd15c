// Command mcp-call resolves an argument string and invokes a tool on an
// MCP server.
//
// Usage:
//
//	mcp-call [flags] TOOL [ARGS...]
//	mcp-call [flags]            # interactive prompt
//
// ARGS may be well-formed JSON, --flag style arguments, or any of the
// messier payload forms the resolver understands (code fences, quoted
// literals, bare script text). With no TOOL, an interactive prompt
// reads "TOOL ARGS" lines.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/robustcall/mcall"
	"github.com/robustcall/mcall/mcp"
	"github.com/robustcall/mcall/resolve"
	"github.com/robustcall/mcall/schema"
)

const defaultServerURL = "http://localhost:9000/sse"

// Responses larger than this go to a file instead of the terminal.
const maxPrintSize = 64 * 1024

func main() {
	var (
		configPath = flag.String("config", "", "YAML server config file")
		serverURL  = flag.String("url", "", "server SSE URL (overrides config)")
		explain    = flag.Bool("explain", false, "show how the argument string was normalized and resolved")
		validate   = flag.Bool("validate", false, "validate resolved arguments against the server's input schema")
		timeout    = flag.Duration("timeout", 60*time.Second, "per-call timeout")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*configPath, *serverURL, *explain, *validate, *timeout, flag.Args()); err != nil {
		logger.Error("mcp-call failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, serverURL string, explain, validate bool, timeout time.Duration, args []string) error {
	cfg, err := serverConfig(configPath, serverURL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := cfg.Connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	app := &app{
		client:   client,
		resolver: resolve.NewResolver(),
		explain:  explain,
		timeout:  timeout,
	}

	tools, err := client.ListTools(ctx)
	if err != nil {
		slog.Warn("tools/list failed, using built-in tool shapes", "error", err)
	} else {
		app.resolver.WithShapes(mcp.Shapes(tools))
		if validate {
			app.schemas = compileSchemas(tools)
		}
	}
	if validate && len(app.schemas) == 0 {
		app.schemas = mcall.DefaultInputSchemas()
	}

	if len(args) == 0 {
		return app.repl()
	}
	return app.callOnce(args[0], strings.Join(args[1:], " "))
}

func serverConfig(configPath, serverURL string) (*mcp.Config, error) {
	if configPath != "" {
		return mcp.LoadConfig(configPath)
	}
	url := serverURL
	if url == "" {
		url = os.Getenv(mcp.EnvServerURL)
	}
	if url == "" {
		url = defaultServerURL
	}
	return &mcp.Config{Name: "default", URL: url}, nil
}

func compileSchemas(tools []mcp.Tool) map[string]*schema.Schema {
	schemas := make(map[string]*schema.Schema, len(tools))
	for _, tool := range tools {
		s, err := schema.CompileJSON(tool.InputSchema)
		if err != nil {
			slog.Warn("skipping unusable input schema", "tool", tool.Name, "error", err)
			continue
		}
		schemas[tool.Name] = s
	}
	return schemas
}

type app struct {
	client   *mcp.Client
	resolver *resolve.Resolver
	schemas  map[string]*schema.Schema
	explain  bool
	timeout  time.Duration
}

func (a *app) callOnce(tool, args string) error {
	params := a.resolve(tool, args)
	if s, ok := a.schemas[tool]; ok {
		if err := s.Validate(params); err != nil {
			return fmt.Errorf("arguments for %s: %w", tool, err)
		}
	}

	slog.Debug("calling tool", "tool", tool, "params", string(params.JSON()))
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	result, err := a.client.CallTool(ctx, tool, params)
	if err != nil {
		return err
	}
	return printResult(os.Stdout, tool, result)
}

// resolve picks the parsing path for the argument string and, with
// -explain, narrates what happened.
func (a *app) resolve(tool, args string) mcall.Params {
	if a.explain {
		a.explainNormalization(args)
		if !strings.HasPrefix(strings.TrimSpace(args), "--") {
			params, strat := a.resolver.ResolveStrategy(args, tool)
			if strat != "" {
				fmt.Fprintf(os.Stderr, "resolved by: %s\n", strat)
			}
			return params
		}
	}
	return a.resolver.ResolveCommandLine(tool, args)
}

func (a *app) explainNormalization(args string) {
	normalized := resolve.Normalize(args)
	if normalized == args {
		fmt.Fprintln(os.Stderr, "normalization: input unchanged")
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(args),
		B:        difflib.SplitLines(normalized),
		FromFile: "raw",
		ToFile:   "normalized",
		Context:  3,
	})
	if err != nil {
		return
	}
	fmt.Fprint(os.Stderr, diff)
}

func (a *app) repl() error {
	rl, err := readline.New("mcp> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("Enter TOOL [ARGS]; empty line or Ctrl-D to exit.")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil || strings.TrimSpace(line) == "" {
			return nil
		}
		tool, args, _ := strings.Cut(strings.TrimSpace(line), " ")
		if err := a.callOnce(tool, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

// printResult renders a tool result, preferring structured JSON and
// spilling oversized output to a file.
func printResult(w io.Writer, tool string, result *mcp.ToolResult) error {
	if result.IsError {
		fmt.Fprintln(w, "tool reported an error:")
	}

	var body string
	if v, ok := mcp.StructuredResult(result); ok {
		pretty, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		body = string(pretty)
	} else {
		body = mcp.Text(result)
	}

	if len(body) > maxPrintSize {
		path := filepath.Join(os.TempDir(), fmt.Sprintf("mcp-call-%s-%d.json", tool, time.Now().Unix()))
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("save oversized response: %w", err)
		}
		fmt.Fprintf(w, "response is %d bytes, saved to %s\n", len(body), path)
		return nil
	}

	fmt.Fprintln(w, body)
	return nil
}
