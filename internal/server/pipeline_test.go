package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fider-contrib/fider-mcp/internal/protocol"
)

// runPipeline feeds raw frames through a real transport wired to the server.
func runPipeline(t *testing.T, srv *Server, input string) []map[string]any {
	t.Helper()

	var out bytes.Buffer
	tr := protocol.NewTransport(strings.NewReader(input), &out, log.New(io.Discard, "", 0), srv.Handle)
	if err := tr.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var responses []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp map[string]any
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("output line %q is not JSON: %v", line, err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func TestPipelineResponsesMatchRequestOrderDespiteSlowFirstCall(t *testing.T) {
	first := true
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if first {
			first = false
			time.Sleep(150 * time.Millisecond)
		}
		io.WriteString(w, `[]`)
	})

	input := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"list_posts","arguments":{}}}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"list_tags","arguments":{}}}` + "\n"

	responses := runPipeline(t, srv, input)
	if len(responses) != 2 {
		t.Fatalf("len(responses) = %d, want 2", len(responses))
	}
	if responses[0]["id"] != float64(1) || responses[1]["id"] != float64(2) {
		t.Fatalf("response ids = %v, %v, want 1 then 2", responses[0]["id"], responses[1]["id"])
	}
}

func TestPipelineEveryRequestWithIDGetsExactlyOneResponse(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	input := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}` + "\n" +
		`{"jsonrpc":"2.0","method":"initialized"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n" +
		`{bad json` + "\n" +
		`{"jsonrpc":"2.0","id":3,"method":"nope"}` + "\n"

	responses := runPipeline(t, srv, input)
	if len(responses) != 4 {
		t.Fatalf("len(responses) = %d, want 4 (initialize, tools/list, parse error, method not found)", len(responses))
	}

	for i, resp := range responses {
		_, hasResult := resp["result"]
		_, hasError := resp["error"]
		if hasResult == hasError {
			t.Fatalf("responses[%d] = %v, want exactly one of result/error", i, resp)
		}
	}

	if responses[2]["id"] != nil {
		t.Fatalf("parse error id = %v, want null", responses[2]["id"])
	}
	errObj := responses[3]["error"].(map[string]any)
	if errObj["code"] != float64(-32601) {
		t.Fatalf("last error code = %v, want -32601", errObj["code"])
	}
}

func TestPipelineToolResultSerializesAsContentBlocks(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"number":12}`)
	})

	input := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"get_post","arguments":{"number":12}}}` + "\n"
	responses := runPipeline(t, srv, input)
	if len(responses) != 1 {
		t.Fatalf("len(responses) = %d, want 1", len(responses))
	}

	result, ok := responses[0]["result"].(map[string]any)
	if !ok {
		t.Fatalf("result = %v, want object", responses[0]["result"])
	}
	content, ok := result["content"].([]any)
	if !ok || len(content) != 1 {
		t.Fatalf("content = %v, want one block", result["content"])
	}
	block := content[0].(map[string]any)
	if block["type"] != "text" {
		t.Fatalf(`block["type"] = %v, want "text"`, block["type"])
	}
	if !strings.HasPrefix(block["text"].(string), "Post #12:") {
		t.Fatalf(`block["text"] = %v, want post prefix`, block["text"])
	}
}
