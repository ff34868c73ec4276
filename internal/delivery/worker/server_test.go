package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"authkit/config"
	"authkit/internal/delivery/http/middleware"
	workerhandler "authkit/internal/delivery/worker/handler"
	domainerrors "authkit/internal/domain/errors"
	mockUsecase "authkit/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestWorker(t *testing.T) (*echo.Echo, *mockUsecase.MockSessionAuditUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	audit := mockUsecase.NewMockSessionAuditUsecase(t)

	cfg := &config.Config{}
	cfg.Env.Env = config.EnvLocal

	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		PushHandler: workerhandler.NewPushHandler(workerhandler.PushHandlerParams{
			Config: cfg,
			Logger: logger,
			Audit:  audit,
		}),
		ErrorMiddleware: middleware.NewErrorMiddleware(logger),
		RequestID:       middleware.NewRequestIDMiddleware(logger),
	})

	return e, audit
}

func TestWorker_Health(t *testing.T) {
	e, _ := createTestWorker(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWorker_HistoryErrorUsesEnvelope(t *testing.T) {
	e, audit := createTestWorker(t)
	audit.EXPECT().ListForUser(mock.Anything, "U1").
		Return(nil, domainerrors.NewStoreError(domainerrors.StoreOpListAll, "sessionEvents", assert.AnError))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/U1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"DOCUMENT_STORE_FAILED"`)
}
