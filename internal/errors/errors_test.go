package errors

import (
	stderrors "errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(New("codebase not found"), ExitUser),
			want: "codebase not found",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitSystem),
			want: "exit code 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	inner := New("inner")
	err := NewUserError(inner, "try --help")

	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	var exitErr *ExitError
	if !stderrors.As(err, &exitErr) {
		t.Fatal("errors.As should extract *ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion != "try --help" {
		t.Errorf("Suggestion = %q, want %q", exitErr.Suggestion, "try --help")
	}
}

func TestNewSystemError(t *testing.T) {
	err := NewSystemError(New("permission denied"), "check directory permissions")
	if err.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystem)
	}
}

func TestWrap_PreservesSentinel(t *testing.T) {
	sentinel := New("sentinel")
	wrapped := Wrap(sentinel, "context")
	if !Is(wrapped, sentinel) {
		t.Error("Is() should see through Wrap()")
	}
}
