package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewCarriesCodeAndMessage(t *testing.T) {
	err := New(CodeNotFound, "account missing")
	if got := CodeOf(err); got != CodeNotFound {
		t.Fatalf("code = %q, want %q", got, CodeNotFound)
	}
	if err.Error() != "account missing" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(CodeStorageFailure, "write ledger", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("wrapped error should match its cause")
	}
	if got := CodeOf(err); got != CodeStorageFailure {
		t.Fatalf("code = %q, want %q", got, CodeStorageFailure)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeGameLocked, "game is locked")
	err := fmt.Errorf("play stage: %w", New(CodeGameLocked, "cooldown active"))
	if !stderrors.Is(err, sentinel) {
		t.Fatal("errors with the same code should match")
	}
	other := New(CodeNotFound, "missing")
	if stderrors.Is(err, other) {
		t.Fatal("errors with different codes should not match")
	}
}

func TestCodeOfPlainError(t *testing.T) {
	if got := CodeOf(stderrors.New("boom")); got != CodeUnknown {
		t.Fatalf("code = %q, want %q", got, CodeUnknown)
	}
	if got := CodeOf(nil); got != CodeUnknown {
		t.Fatalf("code of nil = %q, want %q", got, CodeUnknown)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodePlayStageInvalid, http.StatusBadRequest},
		{CodeSessionMissing, http.StatusUnauthorized},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeSessionInvalid, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeGameLocked, http.StatusLocked},
		{CodeStorageFailure, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.code.HTTPStatus(); got != tt.want {
			t.Fatalf("status for %s = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestHTTPStatusOf(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(CodeGameLocked, "locked"))
	if got := HTTPStatusOf(err); got != http.StatusLocked {
		t.Fatalf("status = %d, want %d", got, http.StatusLocked)
	}
	if got := HTTPStatusOf(stderrors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status for plain error = %d, want 500", got)
	}
}
