package protocol

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
)

// maxLineBytes bounds a single inbound frame. Tool arguments are small; this
// mostly guards against a runaway counterparty.
const maxLineBytes = 10 * 1024 * 1024

// Handler processes one decoded request. A nil response means nothing is
// written back (notifications).
type Handler func(ctx context.Context, req *Request) *Response

// Transport runs the stdio message loop: requests are read, handled and
// answered strictly one at a time, so response order always matches request
// order.
type Transport struct {
	in     io.Reader
	out    *json.Encoder
	logger *log.Logger
	handle Handler
}

// NewTransport wires a transport over the given streams. Responses are
// written one JSON object per line and are not buffered across messages.
func NewTransport(in io.Reader, out io.Writer, logger *log.Logger, handle Handler) *Transport {
	return &Transport{
		in:     in,
		out:    json.NewEncoder(out),
		logger: logger,
		handle: handle,
	}
}

// Run reads frames until end of stream. Blank lines are skipped, unparseable
// lines get a parse-error response with a null id, and no inbound frame ever
// terminates the loop. Returns nil on EOF or context cancellation.
func (t *Transport) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(t.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			t.write(NewError(nil, mcp.PARSE_ERROR, "Parse error: "+err.Error()))
			continue
		}

		if resp := t.handle(ctx, &req); resp != nil {
			t.write(resp)
		}
	}
	return scanner.Err()
}

func (t *Transport) write(resp *Response) {
	if err := t.out.Encode(resp); err != nil {
		t.logger.Printf("writing response: %v", err)
	}
}
