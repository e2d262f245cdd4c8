// Package prompt provides simple interactive prompts.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
//   - [TextInput]: Single-line text input
//
// Prompts are only meaningful on a terminal; callers guard with isatty
// and fall back to flags otherwise.
package prompt
