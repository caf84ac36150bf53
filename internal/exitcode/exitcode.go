// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including a graceful exit
	// from the interactive shell.
	Success = 0

	// UserError indicates bad input (unknown command, bad task number,
	// empty task text).
	UserError = 1

	// IOError indicates a task file or log file that could not be read
	// or written.
	IOError = 2
)
