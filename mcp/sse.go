package mcp

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/robustcall/mcall/internal/buffer"
)

var errNoEndpoint = errors.New("mcp: server closed stream before sending an endpoint")

// SSETransport speaks the HTTP server-sent-events flavor of MCP: the
// client holds a GET stream open, the server's first event names the
// endpoint to POST requests to, and responses arrive back on the
// stream as message events.
type SSETransport struct {
	client *http.Client
	stream io.Closer
	recv   *buffer.Unbounded[[]byte]

	endpointReady chan struct{}
	endpoint      string

	closeOnce sync.Once
}

// DialSSE opens the event stream at streamURL, typically ending in
// /sse, and waits for the server to announce its request endpoint.
func DialSSE(ctx context.Context, streamURL string) (*SSETransport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return nil, fmt.Errorf("sse transport: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", streamURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("connect %s: unexpected status %s", streamURL, resp.Status)
	}

	base, err := url.Parse(streamURL)
	if err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("sse transport: %w", err)
	}

	t := &SSETransport{
		client:        client,
		stream:        resp.Body,
		recv:          buffer.NewUnbounded[[]byte](),
		endpointReady: make(chan struct{}),
	}
	go t.readEvents(resp.Body, base)

	select {
	case <-t.endpointReady:
		return t, nil
	case <-ctx.Done():
		resp.Body.Close()
		return nil, ctx.Err()
	case _, ok := <-t.recv.Receive():
		if !ok {
			return nil, errNoEndpoint
		}
		// A message before the endpoint event violates the protocol.
		resp.Body.Close()
		return nil, errNoEndpoint
	}
}

// readEvents parses the SSE wire format: "event:"/"data:" lines, blank
// line dispatches.
func (t *SSETransport) readEvents(body io.Reader, base *url.URL) {
	defer t.recv.Close()
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	event := "message"
	var data bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			t.dispatch(event, data.String(), base)
			event = "message"
			data.Reset()
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
}

func (t *SSETransport) dispatch(event, data string, base *url.URL) {
	switch event {
	case "endpoint":
		select {
		case <-t.endpointReady:
			return
		default:
		}
		ref, err := url.Parse(data)
		if err != nil {
			return
		}
		t.endpoint = base.ResolveReference(ref).String()
		close(t.endpointReady)
	case "message":
		if data != "" {
			t.recv.Send([]byte(data))
		}
	}
}

// Send POSTs one request to the announced endpoint. The response to the
// request arrives on the event stream, not in the POST reply.
func (t *SSETransport) Send(ctx context.Context, msg []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(msg))
	if err != nil {
		return fmt.Errorf("sse transport: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to server: %w", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("post to server: unexpected status %s", resp.Status)
	}
	return nil
}

// Receive returns the stream of message events. The channel closes when
// the event stream ends.
func (t *SSETransport) Receive() <-chan []byte {
	return t.recv.Receive()
}

// Close tears down the event stream.
func (t *SSETransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		err = t.stream.Close()
	})
	return err
}
