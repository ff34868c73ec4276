package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_KnownCodes(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "auth/user-not-found", want: "No account found with this email address."},
		{code: "auth/wrong-password", want: "Incorrect password. Please try again."},
		{code: "auth/invalid-email", want: "The email address is not valid."},
		{code: "auth/user-disabled", want: "This account has been disabled."},
		{code: "auth/email-already-in-use", want: "This email address is already in use by another account."},
		{code: "auth/weak-password", want: "The password is too weak. Please use a stronger password."},
		{code: "auth/operation-not-allowed", want: "This operation is not allowed."},
		{code: "auth/account-exists-with-different-credential", want: "An account already exists with the same email but different sign-in credentials."},
		{code: "auth/invalid-credential", want: "The provided credential is invalid or has expired."},
		{code: "auth/invalid-verification-code", want: "The verification code is invalid."},
		{code: "auth/invalid-verification-id", want: "The verification ID is invalid."},
		{code: "auth/requires-recent-login", want: "This operation requires recent authentication. Please log in again."},
		{code: "auth/too-many-requests", want: "Too many unsuccessful login attempts. Please try again later."},
		{code: "auth/network-request-failed", want: "A network error occurred. Please check your connection and try again."},
		{code: "auth/popup-closed-by-user", want: "The authentication popup was closed before completing the sign in."},
		{code: "auth/unauthorized-domain", want: "This domain is not authorized for OAuth operations."},
		{code: "auth/expired-action-code", want: "The action code has expired."},
		{code: "auth/invalid-action-code", want: "The action code is invalid."},
	}

	require.Len(t, KnownCodes(), len(tests))

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			// The backend message must never leak through for a known code.
			assert.Equal(t, tt.want, Translate(NewBackendError(tt.code, "raw backend text")))
		})
	}
}

func TestTranslate_UnknownCode(t *testing.T) {
	assert.Equal(t, "quota exceeded", Translate(NewBackendError("auth/quota-exceeded", "quota exceeded")))
	assert.Equal(t, "", Translate(NewBackendError("auth/quota-exceeded", "")))
}

func TestTranslate_ErrorsWithoutCode(t *testing.T) {
	assert.Equal(t, DefaultMessage, Translate(nil))
	assert.Equal(t, DefaultMessage, Translate(errors.New("plain failure")))
	assert.Equal(t, DefaultMessage, Translate(ErrInternalError))
}

func TestTranslate_FindsCodeInWrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errors.Wrap(NewBackendError(CodeWrongPassword, ""), "inner"))

	assert.Equal(t, "Incorrect password. Please try again.", Translate(wrapped))
}

func TestAuthError(t *testing.T) {
	cause := NewBackendError(CodeEmailAlreadyInUse, "EMAIL_EXISTS")

	authErr := NewAuthError(AuthOpRegister, cause)

	assert.Equal(t, "Registration failed: This email address is already in use by another account.", authErr.Error())
	assert.Equal(t, CodeEmailAlreadyInUse, authErr.ErrorCode())
	assert.Equal(t, http.StatusConflict, authErr.HTTPCode())
	assert.ErrorIs(t, authErr, cause)
	// Re-translating an AuthError yields the same sentence instead of the default.
	assert.Equal(t, authErr.Message(), Translate(authErr))

	var appErr AppError
	require.True(t, errors.As(fmt.Errorf("handler: %w", authErr), &appErr))
}

func TestAuthError_WithoutCode(t *testing.T) {
	authErr := NewAuthError(AuthOpLogout, errors.New("socket closed"))

	assert.Equal(t, "Logout failed: "+DefaultMessage, authErr.Error())
	assert.Equal(t, "AUTH_FAILED", authErr.ErrorCode())
	assert.Equal(t, http.StatusUnauthorized, authErr.HTTPCode())
	assert.Equal(t, DefaultMessage, Translate(authErr))
}

func TestStoreError(t *testing.T) {
	storeErr := NewStoreError(StoreOpUpdate, "users", errors.Wrap(ErrDocumentNotFound, "users/u1"))

	assert.Equal(t, "Failed to update document: users/u1: document not found", storeErr.Error())
	assert.Equal(t, StoreOpUpdate, storeErr.Op())
	assert.Equal(t, "users", storeErr.Collection())
	assert.Equal(t, http.StatusNotFound, storeErr.HTTPCode())
	assert.Equal(t, "DOCUMENT_NOT_FOUND", storeErr.ErrorCode())
	assert.ErrorIs(t, storeErr, ErrDocumentNotFound)

	other := NewStoreError(StoreOpListAll, "users", errors.New("deadline exceeded"))
	assert.Equal(t, http.StatusInternalServerError, other.HTTPCode())
	assert.Equal(t, "DOCUMENT_STORE_FAILED", other.ErrorCode())
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrValidationFailed.WithDetails("unknown field: nickname")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "Input validation failed: unknown field: nickname", err.Error())
	assert.NotErrorIs(t, err, ErrProfileNotFound)
}
