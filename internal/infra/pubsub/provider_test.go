package pubsub

import (
	"context"
	"testing"

	"authkit/config"
	"authkit/internal/domain/service"
	mockService "authkit/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishSessionEvent(context.Background(), &service.SessionEvent{EventID: "evt-3"}))
	assert.NoError(t, publisher.Close())
}

func TestNewPublisher_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		want    any
		wantErr string
	}{
		{name: "unset", cfg: nil, want: &noopPublisher{}},
		{name: "empty provider", cfg: &config.PubSubConfig{}, want: &noopPublisher{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: config.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, want: &localHTTPPublisher{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: config.PubSubProviderLocal}, wantErr: "localEndpoint"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: config.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topicId"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider: kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, discardLogger())

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
		})
	}
}

func TestInstrumentedPublisher_RecordsOutcome(t *testing.T) {
	metrics := mockService.NewMockMetricsRecorder(t)
	publisher := &instrumentedPublisher{
		EventPublisher: &noopPublisher{logger: discardLogger()},
		metrics:        metrics,
	}

	metrics.EXPECT().
		RecordBackendCall(metricsComponent, "publish_signed_in", service.OutcomeSuccess, mock.AnythingOfType("time.Duration")).
		Return()

	require.NoError(t, publisher.PublishSessionEvent(context.Background(), &service.SessionEvent{
		EventID: "evt-4",
		Type:    service.SessionEventSignedIn,
	}))
}
