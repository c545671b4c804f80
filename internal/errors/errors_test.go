package errors

import (
	"fmt"
	"testing"
)

func TestErrValidationError(t *testing.T) {
	err := &ErrValidation{Field: "time_period", Message: "unknown value"}
	if got, want := err.Error(), "time_period: unknown value"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}
}

func TestFieldErrorsError(t *testing.T) {
	fe := FieldErrors{"password": "too short", "email": "wrong domain"}
	if got, want := fe.Error(), "email: wrong domain; password: too short"; got != want {
		t.Fatalf("unexpected error string: got %q want %q", got, want)
	}
}

func TestAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to login: %w", FieldErrors{"email": "bad"})
	var fe FieldErrors
	if !As(wrapped, &fe) {
		t.Fatal("expected FieldErrors to be found through wrapping")
	}
	if fe["email"] != "bad" {
		t.Fatalf("unexpected field errors: %#v", fe)
	}
	if !Is(fmt.Errorf("x: %w", ErrSuperseded), ErrSuperseded) {
		t.Fatal("expected wrapped sentinel to match")
	}
}
