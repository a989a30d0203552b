// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package mcpserver exposes attach candidates to MCP clients over stdio.
//
// Tools:
//   - list_attach_items: ranked attach candidates, optionally filtered
//   - get_process_info: details of one live process by pid
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jongio/azd-attach/attach"
	"github.com/jongio/azd-attach/logutil"
	"github.com/jongio/azd-attach/procutil"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"
)

// Tool names.
const (
	ToolListAttachItems = "list_attach_items"
	ToolGetProcessInfo  = "get_process_info"
)

// ItemSource lists attach candidates together with the Lister that
// produced them.
type ItemSource interface {
	List(ctx context.Context) (attach.Lister, []attach.AttachItem, error)
}

// Options configures a Server.
type Options struct {
	Name    string
	Version string
	// RateLimit caps tool calls per second. Zero means unlimited.
	RateLimit float64
	Burst     int
}

// ListResult is the payload of list_attach_items.
type ListResult struct {
	Lister  string              `json:"lister"`
	Command string              `json:"command"`
	Total   int                 `json:"total"`
	Count   int                 `json:"count"`
	Items   []attach.AttachItem `json:"items"`
}

// Server serves the attach tools.
type Server struct {
	source  ItemSource
	limiter *rate.Limiter
	inspect func(ctx context.Context, pid int) (procutil.Info, error)
	mcp     *server.MCPServer
	log     *logutil.ComponentLogger
}

// New creates a Server backed by source.
func New(source ItemSource, opts Options) *Server {
	if opts.Name == "" {
		opts.Name = "azd-attach"
	}
	if opts.Version == "" {
		opts.Version = "0.0.0-dev"
	}

	s := &Server{
		source:  source,
		inspect: procutil.Inspect,
		log:     logutil.NewLogger("mcp"),
	}
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	s.mcp = server.NewMCPServer(opts.Name, opts.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.mcp.AddTool(listAttachItemsTool(), s.handleListAttachItems)
	s.mcp.AddTool(getProcessInfoTool(), s.handleGetProcessInfo)

	return s
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve speaks MCP over in and out until ctx is canceled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("mcp server stopped: %w", err)
	}
	return nil
}

func listAttachItemsTool() mcp.Tool {
	return mcp.NewTool(ToolListAttachItems,
		mcp.WithDescription("List local processes a debugger can attach to, python processes first."),
		mcp.WithString("filter",
			mcp.Description("Case-insensitive text matched against process name, command line and pid"),
		),
		mcp.WithBoolean("pythonOnly",
			mcp.Description("Only return python processes"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of items to return (0 for all)"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func getProcessInfoTool() mcp.Tool {
	return mcp.NewTool(ToolGetProcessInfo,
		mcp.WithDescription("Show name, command line, start time and status of a running process."),
		mcp.WithNumber("pid",
			mcp.Required(),
			mcp.Description("Process id"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (s *Server) checkRateLimit(tool string) *mcp.CallToolResult {
	if s.limiter != nil && !s.limiter.Allow() {
		s.log.Warn("tool call rejected", "tool", tool, "reason", "rate limit")
		return mcp.NewToolResultError(fmt.Sprintf("rate limit exceeded for tool %q, please wait before retrying", tool))
	}
	return nil
}

func (s *Server) handleListAttachItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := s.checkRateLimit(ToolListAttachItems); res != nil {
		return res, nil
	}

	args := getArgsMap(request)
	filter, err := getStringParam(args, "filter")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pythonOnly, err := getBoolParam(args, "pythonOnly")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit, err := getIntParam(args, "limit", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if limit < 0 {
		return mcp.NewToolResultError("parameter \"limit\" must not be negative"), nil
	}

	lister, items, err := s.source.List(ctx)
	if err != nil {
		s.log.Error("listing failed", "tool", ToolListAttachItems, "error", err)
		return mcp.NewToolResultError("failed to list processes: " + err.Error()), nil
	}

	total := len(items)
	if pythonOnly {
		items = attach.PythonOnly(items)
	}
	items = attach.Filter(items, filter)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return marshalToolResult(ListResult{
		Lister:  lister.Name,
		Command: lister.Command.String(),
		Total:   total,
		Count:   len(items),
		Items:   items,
	}), nil
}

func (s *Server) handleGetProcessInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := s.checkRateLimit(ToolGetProcessInfo); res != nil {
		return res, nil
	}

	args := getArgsMap(request)
	if _, ok := args["pid"]; !ok {
		return mcp.NewToolResultError("parameter \"pid\" is required"), nil
	}
	pid, err := getIntParam(args, "pid", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if pid <= 0 {
		return mcp.NewToolResultError("parameter \"pid\" must be positive"), nil
	}

	info, err := s.inspect(ctx, pid)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return marshalToolResult(info), nil
}
