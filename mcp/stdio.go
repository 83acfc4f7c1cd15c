package mcp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/robustcall/mcall/internal/buffer"
)

// stdout lines can carry whole file contents inside tool results.
const maxLineSize = 16 * 1024 * 1024

// StdioTransport runs an MCP server as a subprocess and exchanges
// newline-delimited JSON-RPC messages over its stdin/stdout.
type StdioTransport struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	recv  *buffer.Unbounded[[]byte]

	writeMu sync.Mutex
}

// StartStdio launches the server command and wires up its pipes. The
// context bounds the subprocess lifetime.
func StartStdio(ctx context.Context, command string, args ...string) (*StdioTransport, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdio transport: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdio transport: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", command, err)
	}

	t := &StdioTransport{
		cmd:   cmd,
		stdin: stdin,
		recv:  buffer.NewUnbounded[[]byte](),
	}
	go t.readLines(stdout)
	return t, nil
}

func (t *StdioTransport) readLines(stdout io.Reader) {
	defer t.recv.Close()
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())
		t.recv.Send(line)
	}
}

// Send writes one message as a single line on the server's stdin.
func (t *StdioTransport) Send(ctx context.Context, msg []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if _, err := t.stdin.Write(append(msg, '\n')); err != nil {
		return fmt.Errorf("write to server: %w", err)
	}
	return nil
}

// Receive returns the stream of messages from the server's stdout. The
// channel closes when the subprocess exits or closes its stdout.
func (t *StdioTransport) Receive() <-chan []byte {
	return t.recv.Receive()
}

// Close closes the server's stdin and waits for it to exit.
func (t *StdioTransport) Close() error {
	t.stdin.Close()
	return t.cmd.Wait()
}
