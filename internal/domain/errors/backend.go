package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// BackendError is a failure reported by the identity or document backend, identified by a backend code
// such as "auth/wrong-password".
type BackendError struct {
	Code string
	Msg  string
}

// NewBackendError creates a coded backend error.
func NewBackendError(code, message string) *BackendError {
	return &BackendError{Code: code, Msg: message}
}

func (e *BackendError) Error() string {
	if e.Msg == "" {
		return e.Code
	}

	return e.Code + ": " + e.Msg
}

// BackendCode returns the backend error code.
func (e *BackendError) BackendCode() string {
	return e.Code
}

// BackendMessage returns the raw backend message.
func (e *BackendError) BackendMessage() string {
	return e.Msg
}

// Auth operations, used as the prefix of AuthError messages.
const (
	AuthOpLogin    = "Authentication"
	AuthOpRegister = "Registration"
	AuthOpLogout   = "Logout"
)

var authHTTPCodes = map[string]int{
	CodeUserNotFound:       http.StatusUnauthorized,
	CodeWrongPassword:      http.StatusUnauthorized,
	CodeInvalidCredential:  http.StatusUnauthorized,
	CodeUserDisabled:       http.StatusForbidden,
	CodeInvalidEmail:       http.StatusBadRequest,
	CodeWeakPassword:       http.StatusBadRequest,
	CodeEmailAlreadyInUse:  http.StatusConflict,
	CodeOperationNotAllow:  http.StatusForbidden,
	CodeTooManyRequests:    http.StatusTooManyRequests,
	CodeNetworkRequestFail: http.StatusServiceUnavailable,
	CodeRequiresRecentAuth: http.StatusUnauthorized,
}

// AuthError is returned by every identity gateway operation that fails.
// Its message is already translated for display.
type AuthError struct {
	op      string
	code    string
	message string
	err     error
}

// NewAuthError wraps a backend failure for the given operation.
func NewAuthError(op string, err error) *AuthError {
	var c coder
	code := ""
	if errors.As(err, &c) {
		code = c.BackendCode()
	}

	return &AuthError{
		op:      op,
		code:    code,
		message: Translate(err),
		err:     err,
	}
}

func (e *AuthError) Error() string {
	return e.op + " failed: " + e.message
}

func (e *AuthError) Unwrap() error {
	return e.err
}

// Op returns the failed operation name.
func (e *AuthError) Op() string {
	return e.op
}

// BackendCode returns the backend code of the underlying failure, "" when it had none.
func (e *AuthError) BackendCode() string {
	return e.code
}

// BackendMessage returns the translated message.
func (e *AuthError) BackendMessage() string {
	return e.message
}

func (e *AuthError) HTTPCode() int {
	if status, ok := authHTTPCodes[e.code]; ok {
		return status
	}

	return http.StatusUnauthorized
}

func (e *AuthError) ErrorCode() string {
	if e.code != "" {
		return e.code
	}

	return "AUTH_FAILED"
}

func (e *AuthError) Message() string {
	return e.message
}

func (e *AuthError) Details() string {
	return e.Error()
}

// Document store operations, used in StoreError messages.
const (
	StoreOpListAll     = "get all documents"
	StoreOpGetByID     = "get document by ID"
	StoreOpCreate      = "create document"
	StoreOpUpdate      = "update document"
	StoreOpDelete      = "delete document"
	StoreOpFindByField = "find document by field"
	StoreOpFindByEmail = "find user by email"
)

// StoreError is returned by every document store operation that fails.
type StoreError struct {
	op         string
	collection string
	err        error
}

// NewStoreError wraps a backend failure for the given operation on a collection.
func NewStoreError(op, collection string, err error) *StoreError {
	return &StoreError{op: op, collection: collection, err: err}
}

func (e *StoreError) Error() string {
	cause := "unknown error"
	if e.err != nil {
		cause = e.err.Error()
	}

	return "Failed to " + e.op + ": " + cause
}

func (e *StoreError) Unwrap() error {
	return e.err
}

// Op returns the failed operation name.
func (e *StoreError) Op() string {
	return e.op
}

// Collection returns the collection the operation targeted.
func (e *StoreError) Collection() string {
	return e.collection
}

func (e *StoreError) HTTPCode() int {
	if errors.Is(e.err, ErrDocumentNotFound) {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

func (e *StoreError) ErrorCode() string {
	if errors.Is(e.err, ErrDocumentNotFound) {
		return "DOCUMENT_NOT_FOUND"
	}

	return "DOCUMENT_STORE_FAILED"
}

func (e *StoreError) Message() string {
	return e.Error()
}

func (e *StoreError) Details() string {
	return e.collection
}
