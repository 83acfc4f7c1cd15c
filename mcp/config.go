package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvServerURL overrides the configured server URL when set.
const EnvServerURL = "MCP_SERVER_URL"

var errNoServer = errors.New("mcp: config names neither a url nor a command")

// Config describes how to reach an MCP server: either an HTTP SSE url
// or a command to run over stdio. URL wins when both are set.
type Config struct {
	Name    string   `yaml:"name"`
	URL     string   `yaml:"url,omitempty"`
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
}

// LoadConfig reads a YAML server config and applies the MCP_SERVER_URL
// override.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses YAML config bytes and applies the MCP_SERVER_URL
// override.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if u := os.Getenv(EnvServerURL); u != "" {
		cfg.URL = u
	}
	if cfg.URL == "" && cfg.Command == "" {
		return nil, errNoServer
	}
	return &cfg, nil
}

// Dial opens the transport the config describes.
func (c *Config) Dial(ctx context.Context) (Transport, error) {
	if c.URL != "" {
		return DialSSE(ctx, c.URL)
	}
	return StartStdio(ctx, c.Command, c.Args...)
}

// Connect dials the server, performs the handshake, and returns a ready
// client.
func (c *Config) Connect(ctx context.Context) (*Client, error) {
	transport, err := c.Dial(ctx)
	if err != nil {
		return nil, err
	}
	client := NewClient(transport)
	if _, err := client.Initialize(ctx); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
