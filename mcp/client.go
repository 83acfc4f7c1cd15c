// Package mcp implements a minimal MCP (Model Context Protocol) client:
// the JSON-RPC 2.0 handshake, tool listing, and tool calls, over a
// pluggable transport (stdio subprocess or HTTP with server-sent
// events).
//
// Resolved arguments from the resolve package plug directly into
// [Client.CallTool]:
//
//	params := resolver.Resolve(rawText, "execute_python_script")
//	result, err := client.CallTool(ctx, "execute_python_script", params)
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/robustcall/mcall"
)

const protocolVersion = "2024-11-05"

// ErrClosed is returned by calls made after the transport's incoming
// stream has ended.
var ErrClosed = errors.New("mcp: client closed")

// Transport moves raw JSON-RPC messages to and from a server. Receive's
// channel is closed when the connection ends.
type Transport interface {
	Send(ctx context.Context, msg []byte) error
	Receive() <-chan []byte
	Close() error
}

// Client is an MCP client. Construct with [NewClient]; it is safe for
// concurrent calls, and responses are matched to requests by ID.
type Client struct {
	transport Transport
	nextID    atomic.Int64

	pendingMu sync.Mutex
	pending   map[int64]chan *rpcResponse

	done chan struct{}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      *int64 `json:"id,omitempty"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// RPCError is a JSON-RPC 2.0 error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Message)
}

// InitializeResult is the server's half of the handshake.
type InitializeResult struct {
	ProtocolVersion string     `json:"protocolVersion"`
	ServerInfo      ServerInfo `json:"serverInfo"`
}

// ServerInfo identifies the MCP server.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Tool is a tool advertised by the server in tools/list.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// ToolResult is the outcome of a tools/call.
type ToolResult struct {
	Content           []ContentBlock  `json:"content"`
	StructuredContent json.RawMessage `json:"structuredContent,omitempty"`
	IsError           bool            `json:"isError,omitempty"`
}

// ContentBlock is one block of a tool result.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// NewClient wraps a transport and starts reading responses. Callers own
// the transport's lifetime; closing the transport ends the client.
func NewClient(t Transport) *Client {
	c := &Client{
		transport: t,
		pending:   make(map[int64]chan *rpcResponse),
		done:      make(chan struct{}),
	}
	go c.readLoop()
	return c
}

func (c *Client) readLoop() {
	for msg := range c.transport.Receive() {
		var resp rpcResponse
		if err := json.Unmarshal(msg, &resp); err != nil {
			// Server notifications and other non-response traffic.
			continue
		}
		c.pendingMu.Lock()
		if ch, ok := c.pending[resp.ID]; ok {
			ch <- &resp
			delete(c.pending, resp.ID)
		}
		c.pendingMu.Unlock()
	}

	c.pendingMu.Lock()
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
	c.pendingMu.Unlock()
	close(c.done)
}

func (c *Client) call(ctx context.Context, method string, params any, result any) error {
	id := c.nextID.Add(1)
	data, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      &id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", method, err)
	}

	ch := make(chan *rpcResponse, 1)
	c.pendingMu.Lock()
	c.pending[id] = ch
	c.pendingMu.Unlock()

	if err := c.transport.Send(ctx, data); err != nil {
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
		return fmt.Errorf("%s: send: %w", method, err)
	}

	select {
	case <-ctx.Done():
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
		return ctx.Err()
	case resp, ok := <-ch:
		if !ok {
			return fmt.Errorf("%s: %w", method, ErrClosed)
		}
		if resp.Error != nil {
			return fmt.Errorf("%s: %w", method, resp.Error)
		}
		if result != nil {
			if err := json.Unmarshal(resp.Result, result); err != nil {
				return fmt.Errorf("%s: parse result: %w", method, err)
			}
		}
		return nil
	case <-c.done:
		return fmt.Errorf("%s: %w", method, ErrClosed)
	}
}

// notify sends a JSON-RPC notification, which carries no ID and gets no
// response.
func (c *Client) notify(ctx context.Context, method string) error {
	data, err := json.Marshal(rpcRequest{JSONRPC: "2.0", Method: method})
	if err != nil {
		return fmt.Errorf("%s: marshal notification: %w", method, err)
	}
	return c.transport.Send(ctx, data)
}

// Initialize performs the MCP handshake and sends the initialized
// notification.
func (c *Client) Initialize(ctx context.Context) (*InitializeResult, error) {
	params := map[string]any{
		"protocolVersion": protocolVersion,
		"clientInfo": map[string]string{
			"name":    "mcall",
			"version": "1.0.0",
		},
		"capabilities": map[string]any{},
	}
	var result InitializeResult
	if err := c.call(ctx, "initialize", params, &result); err != nil {
		return nil, err
	}
	if err := c.notify(ctx, "notifications/initialized"); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping checks that the server is responsive.
func (c *Client) Ping(ctx context.Context) error {
	return c.call(ctx, "ping", nil, nil)
}

// ListTools returns the server's tool catalog.
func (c *Client) ListTools(ctx context.Context) ([]Tool, error) {
	var result struct {
		Tools []Tool `json:"tools"`
	}
	if err := c.call(ctx, "tools/list", nil, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes the named tool with the resolved arguments.
func (c *Client) CallTool(ctx context.Context, name string, params mcall.Params) (*ToolResult, error) {
	callParams := map[string]any{
		"name":      name,
		"arguments": json.RawMessage(params.JSON()),
	}
	var result ToolResult
	if err := c.call(ctx, "tools/call", callParams, &result); err != nil {
		return nil, fmt.Errorf("tool %s: %w", name, err)
	}
	return &result, nil
}

// Close closes the underlying transport. In-flight calls fail with
// [ErrClosed].
func (c *Client) Close() error {
	return c.transport.Close()
}
