// Package cli provides the interactive skillboard command-line client.
//
// It wires configuration, the gRPC client and application services into a
// read-eval-print loop. Browsing the directory (list, show) works without an
// account; editing your own profile needs a session obtained with register
// or login. A background watcher pings the server and shows whether it is
// reachable in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
