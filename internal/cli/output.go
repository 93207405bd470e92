package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // A script line or value failed to evaluate
	ExitCommandError = 2 // Bad flags, unreadable input, bad config
)

// ExitError is an error carrying the exit code the process should end with.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Response is the JSON envelope of every command's output.
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// OutputFormatter writes command output as text or JSON.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostics, kept off Writer so JSON stays parseable
}

// Success writes data. In text mode data is printed with fmt.Print, so its String method
// must end lines itself.
func (f *OutputFormatter) Success(data any) error {
	return f.write("ok", data, "")
}

// Failure writes data that is partially failed, for example a script where some lines
// did not evaluate.
func (f *OutputFormatter) Failure(data any, message string) error {
	return f.write("error", data, message)
}

// Error writes an error with no data.
func (f *OutputFormatter) Error(err error) error {
	return f.write("error", nil, err.Error())
}

func (f *OutputFormatter) write(status string, data any, message string) error {
	if f.Format == "json" {
		if err := json.MarshalWrite(f.Writer, Response{Status: status, Data: data, Error: message}, jsontext.WithIndent("  ")); err != nil {
			return err
		}
		_, err := io.WriteString(f.Writer, "\n")
		return err
	}

	if data != nil {
		if _, err := fmt.Fprint(f.Writer, data); err != nil {
			return err
		}
	}
	if message != "" {
		w := f.ErrWriter
		if w == nil {
			w = f.Writer
		}
		fmt.Fprintf(w, "Error: %s\n", message)
	}
	return nil
}
