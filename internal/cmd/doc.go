// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in
// error messages, making command failures more informative for users.
//
// autonode shells out to the git and pip CLIs rather than using Go
// libraries. This keeps behavior identical to what the user gets on the
// command line (SSH keys, credential helpers, pip configuration).
package cmd
