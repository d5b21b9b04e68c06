package cmd

import (
	"errors"
	"fmt"

	awsclient "tasnim.dev/elbv2-dump/internal/aws"
	"tasnim.dev/elbv2-dump/internal/output"
	"tasnim.dev/elbv2-dump/internal/snapshot"
)

// usageError marks bad flags or configuration.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// Describe turns an error returned by the root command into the single
// diagnostic line printed before exiting.
func Describe(err error) string {
	var (
		apiErr   *snapshot.APIError
		writeErr *output.WriteError
		usageErr *usageError
	)
	switch {
	case errors.Is(err, awsclient.ErrNoCredentials):
		return "Error: AWS credentials not found. Please configure your AWS credentials."
	case errors.As(err, &apiErr):
		return fmt.Sprintf("Error: AWS API call failed: %s", snapshot.Cause(apiErr.Err))
	case errors.As(err, &writeErr):
		return fmt.Sprintf("Error: Could not write to file '%s': %v", writeErr.Dest, writeErr.Err)
	case errors.As(err, &usageErr):
		return fmt.Sprintf("Error: %v", usageErr)
	default:
		return fmt.Sprintf("Error: An unexpected error occurred: %v", err)
	}
}

// ExitCode maps a root command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
