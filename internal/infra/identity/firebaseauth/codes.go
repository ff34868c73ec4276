package firebaseauth

import (
	"context"
	"net"
	"net/url"
	"strings"

	domainerrors "authkit/internal/domain/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

// toolkitReasons maps Identity Toolkit error reasons to the client SDK codes the translator knows.
var toolkitReasons = map[string]string{
	"EMAIL_NOT_FOUND":                  domainerrors.CodeUserNotFound,
	"INVALID_PASSWORD":                 domainerrors.CodeWrongPassword,
	"INVALID_EMAIL":                    domainerrors.CodeInvalidEmail,
	"MISSING_EMAIL":                    domainerrors.CodeInvalidEmail,
	"USER_DISABLED":                    domainerrors.CodeUserDisabled,
	"EMAIL_EXISTS":                     domainerrors.CodeEmailAlreadyInUse,
	"WEAK_PASSWORD":                    domainerrors.CodeWeakPassword,
	"OPERATION_NOT_ALLOWED":            domainerrors.CodeOperationNotAllow,
	"PASSWORD_LOGIN_DISABLED":          domainerrors.CodeOperationNotAllow,
	"FEDERATED_USER_ID_ALREADY_LINKED": domainerrors.CodeAccountExistsOther,
	"INVALID_LOGIN_CREDENTIALS":        domainerrors.CodeInvalidCredential,
	"INVALID_IDP_RESPONSE":             domainerrors.CodeInvalidCredential,
	"INVALID_CODE":                     domainerrors.CodeInvalidVerifyCode,
	"INVALID_SESSION_INFO":             domainerrors.CodeInvalidVerifyID,
	"CREDENTIAL_TOO_OLD_LOGIN_AGAIN":   domainerrors.CodeRequiresRecentAuth,
	"TOO_MANY_ATTEMPTS_TRY_LATER":      domainerrors.CodeTooManyRequests,
	"UNAUTHORIZED_DOMAIN":              domainerrors.CodeUnauthorizedDomain,
	"EXPIRED_OOB_CODE":                 domainerrors.CodeExpiredActionCode,
	"INVALID_OOB_CODE":                 domainerrors.CodeInvalidActionCode,
}

// toBackendError turns a failure of either Firebase client into a coded backend error.
// Failures that carry no recognisable reason are returned unchanged.
func toBackendError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		reason, detail := splitReason(apiErr)
		if code, ok := toolkitReasons[reason]; ok {
			return domainerrors.NewBackendError(code, detail)
		}
		if reason != "" {
			return domainerrors.NewBackendError("auth/"+strings.ToLower(strings.ReplaceAll(reason, "_", "-")), detail)
		}

		return err
	}

	switch {
	case auth.IsUserNotFound(err):
		return domainerrors.NewBackendError(domainerrors.CodeUserNotFound, err.Error())
	case isNetworkFailure(err):
		return domainerrors.NewBackendError(domainerrors.CodeNetworkRequestFail, err.Error())
	}

	return err
}

// splitReason parses messages such as "WEAK_PASSWORD : Password should be at least 6 characters".
// detail is the human part when present, else the reason itself.
func splitReason(apiErr *googleapi.Error) (reason, detail string) {
	message := apiErr.Message
	if message == "" && len(apiErr.Errors) > 0 {
		message = apiErr.Errors[0].Message
	}

	reason, detail, found := strings.Cut(message, ":")
	reason = strings.TrimSpace(reason)
	detail = strings.TrimSpace(detail)
	if !found || detail == "" {
		detail = reason
	}
	if strings.ContainsAny(reason, " ") {
		return "", message
	}

	return reason, detail
}

func isNetworkFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error

	return errors.As(err, &urlErr)
}
