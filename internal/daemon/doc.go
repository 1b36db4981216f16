// Package daemon coordinates the long-running langid process.
//
// It wires configuration, the identification service, the profile set, and
// the history store into a single lifecycle with flock-based locking to
// prevent multiple instances. The daemon answers identification requests for
// the HTTP API and IPC layers and records served requests in history.
//
// Keep orchestration logic here: scoring lives in the identify package while
// the daemon focuses on startup, shutdown, and request handling.
package daemon
