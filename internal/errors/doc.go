// Package errors provides error handling conventions for the addons-path CLI.
//
// This package re-exports the wrapping helpers from cockroachdb/errors and
// defines an ExitError type for CLI exit code handling, with exit code
// constants following standard Unix conventions.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and
// [errors.As]:
//
//	err := errors.NewUserError(err, "Check that the codebase path exists")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
