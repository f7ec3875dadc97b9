// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/rustadex/stderr/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "io_error",
			code:    errors.ErrIO,
			message: "sink write failed",
			wantStr: "[IO] sink write failed",
		},
		{
			name:    "layout_error",
			code:    errors.ErrLayout,
			message: "labels exceed bit width",
			wantStr: "[LAYOUT] labels exceed bit width",
		},
		{
			name:    "handle_misuse",
			code:    errors.ErrHandleMisuse,
			message: "step on non-top scope",
			wantStr: "[HANDLE_MISUSE] step on non-top scope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("broken pipe")
	err := errors.Wrap(inner, errors.ErrIO, "write failed")

	if err.Error() != "[IO] write failed: broken pipe" {
		t.Errorf("Error() = %q", err.Error())
	}

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should satisfy errors.Is against the inner error")
	}

	if errors.Wrap(nil, errors.ErrIO, "no-op") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIs(t *testing.T) {
	a := errors.New(errors.ErrInput, "eof")
	b := errors.New(errors.ErrInput, "different message")
	c := errors.New(errors.ErrLayout, "eof")

	if !stderrors.Is(a, b) {
		t.Error("errors with the same code should match")
	}
	if stderrors.Is(a, c) {
		t.Error("errors with different codes should not match")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrLayout, "want %d labels, got %d", 4, 6)

	if !errors.IsErrorCode(err, errors.ErrLayout) {
		t.Error("IsErrorCode should match LAYOUT")
	}
	if errors.IsErrorCode(err, errors.ErrIO) {
		t.Error("IsErrorCode should not match IO")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrIO) {
		t.Error("IsErrorCode should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrConfigParse, "bad toml")); got != errors.ErrConfigParse {
		t.Errorf("GetErrorCode() = %v, want CONFIG_PARSE", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want UNKNOWN", got)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrLayout, "labels exceed bit width").
		WithDetail("bitWidth", 4).
		WithDetail("labels", 6)

	details := errors.GetErrorDetails(err)
	if details["bitWidth"] != 4 || details["labels"] != 6 {
		t.Errorf("details = %v", details)
	}
}
