// Package client talks to the skillboard backend over gRPC.
//
// The Client interface is the contract the CLI depends on. GRPCClient is the
// concrete implementation: it keeps the session token returned by Register or
// Login, attaches it to every outgoing call through a unary interceptor and
// maps gRPC status codes back onto the sentinel errors from internal/common.
//
// Transport-level conditions are exposed as ErrUnavailable and
// ErrUnauthorized; match them with errors.Is.
package client
