package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"authkit/config"
	"authkit/internal/delivery/http/middleware"
	"authkit/internal/delivery/http/router"
	"authkit/internal/delivery/http/router/handler"
	"authkit/internal/domain/entity"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/infra/metrics"
	mockUsecase "authkit/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo      *echo.Echo
	auth      *mockUsecase.MockAuthUsecase
	profiles  *mockUsecase.MockProfileUsecase
	collector *metrics.Collector
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second

	auth := mockUsecase.NewMockAuthUsecase(t)
	profiles := mockUsecase.NewMockProfileUsecase(t)
	collector := metrics.New()

	e := newEcho(HTTPParams{
		Config: cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(auth, profiles, logger),
			ProfileHandler: handler.NewProfileHandler(profiles),
			AuthGate:       middleware.NewAuthGate(auth),
		},
		ErrorMiddleware: middleware.NewErrorMiddleware(logger),
		RequestID:       middleware.NewRequestIDMiddleware(logger),
		Metrics:         collector,
	})

	return serverFixtures{echo: e, auth: auth, profiles: profiles, collector: collector}
}

func (f serverFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)

	return body
}

func TestServer_Health(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	f := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}

func TestServer_AuthGate(t *testing.T) {
	tests := []struct {
		name       string
		state      entity.AuthState
		wantStatus int
		wantCode   string
	}{
		{name: "loading", state: entity.InitialAuthState(), wantStatus: http.StatusServiceUnavailable, wantCode: "AUTH_STATE_LOADING"},
		{name: "signed out", state: entity.AuthState{}, wantStatus: http.StatusUnauthorized, wantCode: "NOT_AUTHENTICATED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestServer(t)
			f.auth.EXPECT().State().Return(tt.state)

			rec := f.do(http.MethodGet, "/profiles/me", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestServer_SignedInReachesProfile(t *testing.T) {
	f := createTestServer(t)
	f.auth.EXPECT().State().Return(entity.AuthState{Identity: &entity.Identity{UID: "U1"}})
	f.profiles.EXPECT().GetProfile(mock.Anything, "U1").Return(&entity.Profile{Email: "a@b.co"}, nil)

	rec := f.do(http.MethodGet, "/profiles/me", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"a@b.co"`)
}

func TestServer_AuthErrorEnvelope(t *testing.T) {
	f := createTestServer(t)
	f.auth.EXPECT().Login(mock.Anything, "a@b.co", "nope").Return(nil,
		domainerrors.NewAuthError(domainerrors.AuthOpLogin,
			domainerrors.NewBackendError(domainerrors.CodeUserNotFound, "EMAIL_NOT_FOUND")))

	rec := f.do(http.MethodPost, "/auth/login", `{"email":"a@b.co","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "No account found with this email address.", body.Message)
	assert.Equal(t, "auth/user-not-found", body.Error.Code)
}

func TestServer_MissingCredentials(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodPost, "/auth/login", `{"email":"a@b.co"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please enter both email and password", decodeError(t, rec).Message)
}

func TestServer_StoreErrorEnvelope(t *testing.T) {
	f := createTestServer(t)
	f.auth.EXPECT().State().Return(entity.AuthState{Identity: &entity.Identity{UID: "ghost"}})
	f.profiles.EXPECT().UpdateProfile(mock.Anything, "ghost", mock.Anything).
		Return(domainerrors.NewStoreError(domainerrors.StoreOpUpdate, "users",
			errors.Wrap(domainerrors.ErrDocumentNotFound, "users/ghost")))

	rec := f.do(http.MethodPatch, "/profiles/ghost", `{"firstName":"Al"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "DOCUMENT_NOT_FOUND", body.Error.Code)
	assert.True(t, strings.HasPrefix(body.Message, "Failed to update document: "))
}

func TestServer_UpdateOtherProfileForbidden(t *testing.T) {
	f := createTestServer(t)
	f.auth.EXPECT().State().Return(entity.AuthState{Identity: &entity.Identity{UID: "U1"}})

	rec := f.do(http.MethodPatch, "/profiles/U2", `{"firstName":"Al"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "PROFILE_FORBIDDEN", decodeError(t, rec).Error.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/nowhere", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Error.Code)
}

func TestServer_BodyLimit(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodPost, "/auth/login", `{"email":"`+strings.Repeat("a", 2048)+`","password":"x"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	f := createTestServer(t)
	f.collector.RecordAuthTransition(string(entity.AuthStatusAuthenticated))

	rec := f.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `authkit_auth_transitions_total{status="authenticated"} 1`)
}
