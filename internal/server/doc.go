// Package server implements an MCP (Model Context Protocol) server for the
// figure tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_dimensions: Get width and height
//   - image_crop_box: Crop a clamped bounding box to <name>_cropped.<ext>
//   - image_crop_quadrant: Crop a named region (top-left, center, ...)
//   - image_compose_grid: Compose four captioned images into a 2x2 grid
//
// Tools that write an image answer with the output path and the
// dimensions read back from the written file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Logging goes to stderr through zap, never to stdout.
package server
