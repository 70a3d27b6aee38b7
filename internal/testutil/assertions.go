package testutil

import (
	"errors"
	"testing"

	apperrors "autoledger/internal/errors"
)

// RequireAppError stops the test unless err unwraps to an *AppError.
func RequireAppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return appErr
}

// AssertAppError checks the AppError code, reporting the message on mismatch.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError %s, got nil", code)
	}
	if appErr := RequireAppError(t, err); appErr.Code != code {
		t.Errorf("code = %s, want %s (%s)", appErr.Code, code, appErr.Message)
	}
}

// AppMessage returns the client-facing message carried by err.
func AppMessage(t *testing.T, err error) string {
	t.Helper()
	return RequireAppError(t, err).Message
}

// AppStatus returns the HTTP status carried by err, or 0 for plain errors.
func AppStatus(err error) int {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 0
}

func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
