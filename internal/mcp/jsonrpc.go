// Package mcp serves the scoring engine over the Model Context Protocol
// (JSON-RPC 2.0, one message per line on stdio) so that editors and agents
// can grade a letter without shelling out to the CLI.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/blackwell-systems/lettergrade/internal/engine"
)

// protocolVersion is the MCP revision the server speaks.
const protocolVersion = "2024-11-05"

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Server is an MCP stdio server exposing the scoring engine as tools.
type Server struct {
	engine        *engine.Engine
	maxInputChars int
	version       string
	log           *zap.Logger
	tools         []toolDef
}

// toolDef describes a registered MCP tool.
type toolDef struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     toolHandler

	schema *gojsonschema.Schema
}

// toolHandler is the function signature for MCP tool handlers.
type toolHandler func(args json.RawMessage) (any, error)

type jsonrpcRequest struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type jsonrpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Result  any              `json:"result,omitempty"`
	Error   *jsonrpcError    `json:"error,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type toolsCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// toolsCallResult wraps a tool result as MCP text content.
type toolsCallResult struct {
	Content []mcpContent `json:"content"`
	IsError bool         `json:"isError"`
}

type mcpContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type toolListEntry struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// NewServer constructs a Server around eng. maxInputChars caps the letter
// text accepted by tools (0 disables the cap); version is reported in the
// initialize handshake.
func NewServer(eng *engine.Engine, maxInputChars int, version string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		engine:        eng,
		maxInputChars: maxInputChars,
		version:       version,
		log:           log,
	}
	addTools(s)
	return s
}

// registerTool compiles the tool's input schema and adds it to s. The
// schemas are package literals, so a compile failure is a programming error.
func (s *Server) registerTool(def toolDef) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(def.InputSchema))
	if err != nil {
		panic(fmt.Sprintf("mcp: tool %s: invalid input schema: %v", def.Name, err))
	}
	def.schema = schema
	s.tools = append(s.tools, def)
}

// validateArgs checks args against the tool's input schema and folds every
// violation into one error.
func (t *toolDef) validateArgs(args json.RawMessage) error {
	result, err := t.schema.Validate(gojsonschema.NewBytesLoader(args))
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid arguments: %s", strings.Join(problems, "; "))
}

// Run blocks, reading JSON-RPC messages from r and writing responses to w,
// until ctx is cancelled or r returns EOF. Returns nil on clean shutdown,
// or a non-nil error for unexpected I/O failures.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	// Whole letters arrive inside a single line.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lineCh)
		for sc.Scan() {
			select {
			case lineCh <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			errCh <- err
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lineCh:
			if !ok {
				select {
				case err := <-errCh:
					return err
				default:
					return nil
				}
			}
			resp, reply := s.handle(line)
			if !reply {
				continue
			}
			if err := writeResponse(bw, resp); err != nil {
				return err
			}
		}
	}
}

// handle processes one JSON-RPC line. reply is false for notifications.
func (s *Server) handle(line string) (resp jsonrpcResponse, reply bool) {
	resp.JSONRPC = "2.0"

	var req jsonrpcRequest
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		resp.Error = &jsonrpcError{Code: codeParseError, Message: "Parse error"}
		return resp, true
	}
	if req.ID == nil {
		return resp, false
	}
	resp.ID = req.ID

	s.log.Debug("mcp request", zap.String("method", req.Method))

	switch req.Method {
	case "initialize":
		resp.Result = map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo":      map[string]any{"name": "lettergrade", "version": s.version},
		}
	case "ping":
		resp.Result = map[string]any{}
	case "tools/list":
		entries := make([]toolListEntry, 0, len(s.tools))
		for _, t := range s.tools {
			entries = append(entries, toolListEntry{Name: t.Name, Description: t.Description, InputSchema: t.InputSchema})
		}
		resp.Result = map[string]any{"tools": entries}
	case "tools/call":
		var params toolsCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			resp.Error = &jsonrpcError{Code: codeInvalidParams, Message: "Invalid params"}
			break
		}
		resp.Result = s.callTool(params)
	default:
		resp.Error = &jsonrpcError{Code: codeMethodNotFound, Message: "Method not found"}
	}
	return resp, true
}

// callTool runs a tool and wraps its result or error as MCP content. Tool
// failures are reported in-band with isError rather than as JSON-RPC errors.
func (s *Server) callTool(params toolsCallParams) toolsCallResult {
	var found *toolDef
	for i := range s.tools {
		if s.tools[i].Name == params.Name {
			found = &s.tools[i]
			break
		}
	}
	if found == nil {
		return errorResult(fmt.Errorf("unknown tool: %s", params.Name))
	}

	args := params.Arguments
	if args == nil {
		args = json.RawMessage(`{}`)
	}

	if err := found.validateArgs(args); err != nil {
		s.log.Debug("mcp tool arguments rejected", zap.String("tool", params.Name), zap.Error(err))
		return errorResult(err)
	}

	result, err := found.Handler(args)
	if err != nil {
		s.log.Debug("mcp tool failed", zap.String("tool", params.Name), zap.Error(err))
		return errorResult(err)
	}
	data, err := json.Marshal(result)
	if err != nil {
		return errorResult(err)
	}
	return toolsCallResult{Content: []mcpContent{{Type: "text", Text: string(data)}}}
}

func errorResult(err error) toolsCallResult {
	return toolsCallResult{
		Content: []mcpContent{{Type: "text", Text: err.Error()}},
		IsError: true,
	}
}

// writeResponse marshals resp as a single JSON line and flushes the writer.
func writeResponse(bw *bufio.Writer, resp jsonrpcResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if _, err := bw.Write(data); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
