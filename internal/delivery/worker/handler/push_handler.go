// Package handler holds the endpoints of the session worker.
package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"authkit/config"
	deliverycontext "authkit/internal/delivery/context"
	"authkit/internal/delivery/http/response"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/service"
	"authkit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler records session events pushed by Pub/Sub
type PushHandler struct {
	verify func(*http.Request) error
	logger *slog.Logger
	audit  usecase.SessionAuditUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Audit  usecase.SessionAuditUsecase
}

// NewPushHandler verifies push tokens only for Google Pub/Sub outside local development
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config
	verifyPushAuth := cfg.PubSub != nil &&
		cfg.PubSub.Provider == config.PubSubProviderGoogle &&
		cfg.Env.Env != config.EnvLocal

	var verify func(*http.Request) error
	if verifyPushAuth {
		verify = verifyPubSubToken
	}

	return newPushHandler(params.Audit, params.Logger, verify)
}

func newPushHandler(audit usecase.SessionAuditUsecase, logger *slog.Logger, verify func(*http.Request) error) *PushHandler {
	return &PushHandler{verify: verify, logger: logger, audit: audit}
}

// HandlePush answers 503 on store failures so Pub/Sub redelivers, and 200 for events that can never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.SessionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Error("[Worker] Failed to parse session event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Attribute wins over the header-derived ID so a trace follows the publisher.
	requestID := pushMsg.Message.Attributes["request_id"]
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	logger = logger.With(slog.String("message_id", pushMsg.Message.MessageID))
	ctx = deliverycontext.WithLogger(ctx, logger)

	if err := h.audit.Record(ctx, &event, requestID); err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			logger.Warn("[Worker] Dropping invalid session event", slog.Any("error", err))

			return c.NoContent(http.StatusOK)
		}

		logger.Error("[Worker] Failed to record session event", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// History lists the recorded session events of one account.
func (h *PushHandler) History(c echo.Context) error {
	records, err := h.audit.ListForUser(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// verifyPubSubToken validates the OIDC token Pub/Sub attaches to authenticated push requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
