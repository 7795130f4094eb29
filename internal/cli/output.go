package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/allocation"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The allocation is invalid
	ExitCommandError = 2 // Bad flags or arguments
)

// Error codes reported in CLI output.
const (
	ErrCodeAmountOutOfRange   = "amount_out_of_range"
	ErrCodeShareMismatch      = "share_mismatch"
	ErrCodeMalformedAmount    = "malformed_amount"
	ErrCodeNoParticipants     = "no_participants"
	ErrCodeUnknownParticipant = "unknown_participant"
	ErrCodeGeneric            = "invalid_input"
)

// printer groups digits in amounts shown to people.
var printer = message.NewPrinter(language.English)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
}

func (e *ExitError) Error() string {
	return e.Message
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitCommandError if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return nil
}

// Fail writes err and returns the ExitError the command should end with.
func (f *OutputFormatter) Fail(err error) error {
	code, details := describe(err)
	if writeErr := f.Error(code, err.Error(), details); writeErr != nil {
		return writeErr
	}
	return NewExitError(ExitFailure, err.Error())
}

// describe maps engine errors to an output code and structured details.
func describe(err error) (string, any) {
	var (
		mismatch   *allocation.ShareMismatchError
		outOfRange *allocation.AmountOutOfRangeError
		unknown    *unknownParticipantError
	)
	switch {
	case errors.As(err, &mismatch):
		return ErrCodeShareMismatch, map[string]int64{"sum": mismatch.Sum, "total": mismatch.Total}
	case errors.As(err, &outOfRange):
		return ErrCodeAmountOutOfRange, map[string]int64{"total": outOfRange.Total, "ceiling": outOfRange.Ceiling}
	case errors.Is(err, allocation.ErrMalformedAmount):
		return ErrCodeMalformedAmount, nil
	case errors.Is(err, errNoParticipants):
		return ErrCodeNoParticipants, nil
	case errors.As(err, &unknown):
		return ErrCodeUnknownParticipant, map[string]string{"name": unknown.name}
	default:
		return ErrCodeGeneric, nil
	}
}

// parseTotal parses and range-checks a total argument.
func parseTotal(text string, ceiling int64) (int64, error) {
	total, err := allocation.ParseUnits(text)
	if err != nil {
		return 0, err
	}
	if total <= 0 || total > ceiling {
		return 0, &allocation.AmountOutOfRangeError{Total: total, Ceiling: ceiling}
	}
	return total, nil
}
