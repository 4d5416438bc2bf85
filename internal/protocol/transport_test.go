package protocol

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// echoHandler answers every non-notification with its method name.
func echoHandler(_ context.Context, req *Request) *Response {
	if req.IsNotification() {
		return nil
	}
	return NewResult(req.ID, req.Method)
}

func runTransport(t *testing.T, input string, handle Handler) []map[string]any {
	t.Helper()

	var out bytes.Buffer
	tr := NewTransport(strings.NewReader(input), &out, testLogger(), handle)
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

func TestRunEndsCleanlyOnEOF(t *testing.T) {
	responses := runTransport(t, "", echoHandler)
	if len(responses) != 0 {
		t.Fatalf("len(responses) = %d, want 0", len(responses))
	}
}

func TestRunSkipsBlankLines(t *testing.T) {
	input := "\n   \n" + `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n\n"
	responses := runTransport(t, input, echoHandler)
	if len(responses) != 1 {
		t.Fatalf("len(responses) = %d, want 1", len(responses))
	}
}

func TestRunAnswersParseErrorWithNullID(t *testing.T) {
	responses := runTransport(t, "{bad json\n", echoHandler)
	if len(responses) != 1 {
		t.Fatalf("len(responses) = %d, want 1", len(responses))
	}

	resp := responses[0]
	id, present := resp["id"]
	if !present || id != nil {
		t.Fatalf("id = %v (present=%v), want explicit null", id, present)
	}
	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("error = %v, want error object", resp["error"])
	}
	if errObj["code"] != float64(mcp.PARSE_ERROR) {
		t.Fatalf("error.code = %v, want %d", errObj["code"], mcp.PARSE_ERROR)
	}
	if !strings.HasPrefix(errObj["message"].(string), "Parse error") {
		t.Fatalf("error.message = %v, want Parse error prefix", errObj["message"])
	}
}

func TestRunContinuesAfterParseError(t *testing.T) {
	input := "{bad json\n" + `{"jsonrpc":"2.0","id":7,"method":"ping"}` + "\n"
	responses := runTransport(t, input, echoHandler)
	if len(responses) != 2 {
		t.Fatalf("len(responses) = %d, want 2", len(responses))
	}
	if responses[1]["id"] != float64(7) {
		t.Fatalf("second response id = %v, want 7", responses[1]["id"])
	}
	if responses[1]["result"] != "ping" {
		t.Fatalf("second response result = %v, want %q", responses[1]["result"], "ping")
	}
}

func TestRunEmitsNothingForNotifications(t *testing.T) {
	input := `{"jsonrpc":"2.0","method":"initialized"}` + "\n"
	responses := runTransport(t, input, echoHandler)
	if len(responses) != 0 {
		t.Fatalf("len(responses) = %d, want 0", len(responses))
	}
}

func TestRunTreatsNullIDAsAnswerable(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":null,"method":"ping"}` + "\n"
	responses := runTransport(t, input, echoHandler)
	if len(responses) != 1 {
		t.Fatalf("len(responses) = %d, want 1", len(responses))
	}
	if id, present := responses[0]["id"]; !present || id != nil {
		t.Fatalf("id = %v (present=%v), want null echoed back", id, present)
	}
}

func TestRunPreservesRequestOrder(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":1,"method":"first"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"second"}` + "\n" +
		`{"jsonrpc":"2.0","id":3,"method":"third"}` + "\n"
	responses := runTransport(t, input, echoHandler)
	if len(responses) != 3 {
		t.Fatalf("len(responses) = %d, want 3", len(responses))
	}
	for i, want := range []float64{1, 2, 3} {
		if responses[i]["id"] != want {
			t.Fatalf("responses[%d].id = %v, want %v", i, responses[i]["id"], want)
		}
	}
}

func TestRunPreservesStringIDs(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":"abc-1","method":"ping"}` + "\n"
	responses := runTransport(t, input, echoHandler)
	if len(responses) != 1 {
		t.Fatalf("len(responses) = %d, want 1", len(responses))
	}
	if responses[0]["id"] != "abc-1" {
		t.Fatalf("id = %v, want %q", responses[0]["id"], "abc-1")
	}
}

func TestResponseCarriesResultXorError(t *testing.T) {
	data, err := json.Marshal(NewResult(json.RawMessage("1"), map[string]any{"ok": true}))
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	if strings.Contains(string(data), `"error"`) {
		t.Fatalf("result response = %s, want no error member", data)
	}

	data, err = json.Marshal(NewError(json.RawMessage("1"), mcp.INTERNAL_ERROR, "boom"))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(data), `"result"`) {
		t.Fatalf("error response = %s, want no result member", data)
	}
}
