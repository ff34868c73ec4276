package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authkit/internal/delivery/http/validator"
	"authkit/internal/domain/entity"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/repository"
	mockUsecase "authkit/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	handler  *AuthHandler
	auth     *mockUsecase.MockAuthUsecase
	profiles *mockUsecase.MockProfileUsecase
	echo     *echo.Echo
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	auth := mockUsecase.NewMockAuthUsecase(t)
	profiles := mockUsecase.NewMockProfileUsecase(t)
	e := echo.New()
	e.Validator = validator.New()

	return authHandlerFixtures{
		handler:  NewAuthHandler(auth, profiles, slog.New(slog.NewTextHandler(io.Discard, nil))),
		auth:     auth,
		profiles: profiles,
		echo:     e,
	}
}

func (f authHandlerFixtures) post(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

func TestAuthHandler_Login_MissingCredentials(t *testing.T) {
	bodies := []string{`{}`, `{"email":"a@b.co"}`, `{"password":"secret"}`, `{"email":"","password":""}`}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			f := createTestAuthHandler(t)
			c, _ := f.post(body)

			err := f.handler.Login(c)

			require.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
			assert.Equal(t, "Please enter both email and password", err.Error())
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := f.post(`{"email":"a@b.co","password":"secret1"}`)

	identity := &entity.Identity{UID: "U1", Email: "a@b.co"}
	f.auth.EXPECT().Login(mock.Anything, "a@b.co", "secret1").Return(identity, nil)
	f.profiles.EXPECT().UpdateProfile(mock.Anything, "U1", repository.Fields{}).Return(nil)

	require.NoError(t, f.handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got entity.Identity
	decodeData(t, rec, &got)
	assert.Equal(t, "U1", got.UID)
}

func TestAuthHandler_Login_ProfileRefreshFailureIsIgnored(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := f.post(`{"email":"a@b.co","password":"secret1"}`)

	f.auth.EXPECT().Login(mock.Anything, "a@b.co", "secret1").Return(&entity.Identity{UID: "U1"}, nil)
	f.profiles.EXPECT().UpdateProfile(mock.Anything, "U1", mock.Anything).
		Return(domainerrors.NewStoreError(domainerrors.StoreOpUpdate, "users", domainerrors.ErrDocumentNotFound))

	require.NoError(t, f.handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Login_BackendFailure(t *testing.T) {
	f := createTestAuthHandler(t)
	c, _ := f.post(`{"email":"a@b.co","password":"wrong"}`)

	authErr := domainerrors.NewAuthError(domainerrors.AuthOpLogin,
		domainerrors.NewBackendError(domainerrors.CodeWrongPassword, "INVALID_PASSWORD"))
	f.auth.EXPECT().Login(mock.Anything, "a@b.co", "wrong").Return(nil, authErr)

	err := f.handler.Login(c)

	var got *domainerrors.AuthError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "Incorrect password. Please try again.", got.Message())
	assert.Equal(t, http.StatusUnauthorized, got.HTTPCode())
}

func TestAuthHandler_Register_CreatesProfile(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := f.post(`{"email":"n@b.co","password":"secret1","firstName":"Neo","phoneNumber":"+15550100"}`)

	identity := &entity.Identity{UID: "U2", Email: "n@b.co", ProviderIDs: []string{"password"}}
	f.auth.EXPECT().Register(mock.Anything, "n@b.co", "secret1").Return(identity, nil)
	f.profiles.EXPECT().
		CreateFromIdentity(mock.Anything, identity, mock.MatchedBy(func(extra *entity.ProfileExtra) bool {
			return extra.FirstName != nil && *extra.FirstName == "Neo" &&
				extra.PhoneNumber.Set && *extra.PhoneNumber.Value == "+15550100" &&
				!extra.PhotoURL.Set &&
				extra.Username == nil
		})).
		Return(&entity.Profile{Email: "n@b.co", FirstName: "Neo"}, nil)

	require.NoError(t, f.handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got struct {
		Identity entity.Identity `json:"identity"`
		Profile  entity.Profile  `json:"profile"`
	}
	decodeData(t, rec, &got)
	assert.Equal(t, "U2", got.Identity.UID)
	assert.Equal(t, "Neo", got.Profile.FirstName)
}

func TestAuthHandler_Register_InvalidOptionalField(t *testing.T) {
	f := createTestAuthHandler(t)
	c, _ := f.post(`{"email":"n@b.co","password":"secret1","photoURL":"not a url"}`)

	err := f.handler.Register(c)

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Register_EmailInUse(t *testing.T) {
	f := createTestAuthHandler(t)
	c, _ := f.post(`{"email":"taken@b.co","password":"secret1"}`)

	f.auth.EXPECT().Register(mock.Anything, "taken@b.co", "secret1").Return(nil,
		domainerrors.NewAuthError(domainerrors.AuthOpRegister,
			domainerrors.NewBackendError(domainerrors.CodeEmailAlreadyInUse, "EMAIL_EXISTS")))

	err := f.handler.Register(c)

	var got *domainerrors.AuthError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "Registration failed: This email address is already in use by another account.", got.Error())
	assert.Equal(t, http.StatusConflict, got.HTTPCode())
}

func TestAuthHandler_Logout(t *testing.T) {
	f := createTestAuthHandler(t)
	c, rec := f.post(``)

	f.auth.EXPECT().Logout(mock.Anything).Return(nil)

	require.NoError(t, f.handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_State_Routes(t *testing.T) {
	tests := []struct {
		name      string
		state     entity.AuthState
		wantRoute string
		wantState entity.AuthStatus
	}{
		{name: "loading", state: entity.InitialAuthState(), wantRoute: "", wantState: entity.AuthStatusLoading},
		{name: "signed out", state: entity.AuthState{}, wantRoute: "(auth)", wantState: entity.AuthStatusUnauthenticated},
		{name: "signed in", state: entity.AuthState{Identity: &entity.Identity{UID: "U1"}}, wantRoute: "(tabs)", wantState: entity.AuthStatusAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthHandler(t)
			req := httptest.NewRequest(http.MethodGet, "/auth/state", nil)
			rec := httptest.NewRecorder()
			c := f.echo.NewContext(req, rec)

			f.auth.EXPECT().State().Return(tt.state)

			require.NoError(t, f.handler.State(c))

			var got AuthStateResponse
			decodeData(t, rec, &got)
			assert.Equal(t, tt.wantRoute, got.Route)
			assert.Equal(t, tt.wantState, got.Status)
			assert.Equal(t, tt.state.Loading, got.Loading)
		})
	}
}
