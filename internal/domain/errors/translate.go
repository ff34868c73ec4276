package errors

import "github.com/pkg/errors"

// DefaultMessage is shown when a failure cannot be translated.
const DefaultMessage = "An unknown error occurred. Please try again."

// Known identity backend codes.
const (
	CodeUserNotFound       = "auth/user-not-found"
	CodeWrongPassword      = "auth/wrong-password"
	CodeInvalidEmail       = "auth/invalid-email"
	CodeUserDisabled       = "auth/user-disabled"
	CodeEmailAlreadyInUse  = "auth/email-already-in-use"
	CodeWeakPassword       = "auth/weak-password"
	CodeOperationNotAllow  = "auth/operation-not-allowed"
	CodeAccountExistsOther = "auth/account-exists-with-different-credential"
	CodeInvalidCredential  = "auth/invalid-credential"
	CodeInvalidVerifyCode  = "auth/invalid-verification-code"
	CodeInvalidVerifyID    = "auth/invalid-verification-id"
	CodeRequiresRecentAuth = "auth/requires-recent-login"
	CodeTooManyRequests    = "auth/too-many-requests"
	CodeNetworkRequestFail = "auth/network-request-failed"
	CodePopupClosedByUser  = "auth/popup-closed-by-user"
	CodeUnauthorizedDomain = "auth/unauthorized-domain"
	CodeExpiredActionCode  = "auth/expired-action-code"
	CodeInvalidActionCode  = "auth/invalid-action-code"
)

var backendMessages = map[string]string{
	CodeUserNotFound:       "No account found with this email address.",
	CodeWrongPassword:      "Incorrect password. Please try again.",
	CodeInvalidEmail:       "The email address is not valid.",
	CodeUserDisabled:       "This account has been disabled.",
	CodeEmailAlreadyInUse:  "This email address is already in use by another account.",
	CodeWeakPassword:       "The password is too weak. Please use a stronger password.",
	CodeOperationNotAllow:  "This operation is not allowed.",
	CodeAccountExistsOther: "An account already exists with the same email but different sign-in credentials.",
	CodeInvalidCredential:  "The provided credential is invalid or has expired.",
	CodeInvalidVerifyCode:  "The verification code is invalid.",
	CodeInvalidVerifyID:    "The verification ID is invalid.",
	CodeRequiresRecentAuth: "This operation requires recent authentication. Please log in again.",
	CodeTooManyRequests:    "Too many unsuccessful login attempts. Please try again later.",
	CodeNetworkRequestFail: "A network error occurred. Please check your connection and try again.",
	CodePopupClosedByUser:  "The authentication popup was closed before completing the sign in.",
	CodeUnauthorizedDomain: "This domain is not authorized for OAuth operations.",
	CodeExpiredActionCode:  "The action code has expired.",
	CodeInvalidActionCode:  "The action code is invalid.",
}

type coder interface {
	BackendCode() string
}

type messager interface {
	BackendMessage() string
}

// Translate maps a backend failure to a sentence that can be shown to the user.
// Errors without a backend code get DefaultMessage; unknown codes return the
// backend's own message verbatim, even when it is empty.
func Translate(err error) string {
	var c coder
	if err == nil || !errors.As(err, &c) {
		return DefaultMessage
	}

	if message, ok := backendMessages[c.BackendCode()]; ok {
		return message
	}

	if m, ok := c.(messager); ok {
		return m.BackendMessage()
	}

	return DefaultMessage
}

// KnownCodes returns every code the translator has a sentence for.
func KnownCodes() []string {
	codes := make([]string, 0, len(backendMessages))
	for code := range backendMessages {
		codes = append(codes, code)
	}

	return codes
}
