package mcp

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
)

// RecoveryAction determines how to handle a tool server operation failure.
type RecoveryAction int

const (
	// NoRetry — the error is not recoverable (bad request, auth failure, timeout).
	NoRetry RecoveryAction = iota
	// RetrySameSession — transient error, retry with the existing session.
	// Reserved: ClassifyError does not currently return this value. Intended
	// for rate-limit / throttle errors once server-side throttling is detected.
	RetrySameSession
	// RetryNewSession — transport failure, recreate the session and retry.
	RetryNewSession
)

// Recovery configuration constants.
const (
	// MaxRetries is the number of retry attempts after the initial failure.
	MaxRetries = 1

	// ReinitTimeout is the deadline for recreating a session during recovery.
	ReinitTimeout = 10 * time.Second

	// OperationTimeout is the per-call deadline for CallTool and ListTools.
	// Set conservatively: some tools are legitimately slow. The agent's
	// constraint-level timeout is the hard ceiling above this.
	OperationTimeout = 90 * time.Second

	// RetryBackoffMin is the minimum jittered backoff between retries.
	RetryBackoffMin = 250 * time.Millisecond

	// RetryBackoffMax is the maximum jittered backoff between retries.
	RetryBackoffMax = 750 * time.Millisecond

	// MCPInitTimeout is the per-server initialization timeout (transport + handshake).
	MCPInitTimeout = 30 * time.Second

	// MCPHealthPingTimeout is the health check ping timeout.
	MCPHealthPingTimeout = 5 * time.Second

	// MCPHealthInterval is the health check loop interval.
	MCPHealthInterval = 15 * time.Second
)

// connectionErrorMarkers are substrings of transport failures worth a
// fresh session. String matching is a last resort for errors the SDK and
// net packages surface untyped.
var connectionErrorMarkers = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"connection closed",
	"no such host",
}

// ClassifyError decides the recovery action for a failed server call.
// The default for anything unrecognized is NoRetry: retrying an unknown
// error against a tool that may have side effects is not safe.
func ClassifyError(err error) RecoveryAction {
	switch {
	case err == nil:
		return NoRetry

	// Cancellation and deadlines: the caller gave up, do not retry.
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return NoRetry

	case isNetworkError(err):
		var netErr net.Error
		errors.As(err, &netErr)
		if netErr.Timeout() {
			return NoRetry // a slow server won't get faster on retry
		}
		return RetryNewSession

	case isConnectionError(err):
		return RetryNewSession

	// JSON-RPC protocol errors mean the request itself was bad.
	case isProtocolError(err):
		return NoRetry

	default:
		return NoRetry
	}
}

func isNetworkError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}

// isConnectionError detects connection-level transport failures by typed
// sentinel first, message markers second.
func isConnectionError(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, net.ErrClosed) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range connectionErrorMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// isProtocolError detects JSON-RPC protocol errors from the SDK using
// its typed jsonrpc.Error with standard JSON-RPC 2.0 codes.
func isProtocolError(err error) bool {
	var wireErr *jsonrpc.Error
	if !errors.As(err, &wireErr) {
		return false
	}
	switch wireErr.Code {
	case jsonrpc.CodeParseError,
		jsonrpc.CodeInvalidRequest,
		jsonrpc.CodeMethodNotFound,
		jsonrpc.CodeInvalidParams:
		return true
	default:
		return false
	}
}
