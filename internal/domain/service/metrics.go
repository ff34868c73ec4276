package service

import "time"

// Backend call outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// MetricsRecorder records backend round trips.
type MetricsRecorder interface {
	RecordBackendCall(component, operation, outcome string, latency time.Duration)
	RecordAuthTransition(status string)
}
