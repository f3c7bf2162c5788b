package service

import (
	"context"
)

// RecordSubmittedEvent is published after a record and its photos were accepted by the backend
type RecordSubmittedEvent struct {
	RequestID   string  `json:"request_id,omitempty"` // For distributed tracing
	RecordID    string  `json:"record_id"`
	OperatorID  string  `json:"operator_id"`
	City        string  `json:"city"`
	Month       string  `json:"month"` // YYYY-MM of the record start time
	ServiceType string  `json:"service_type"`
	Area        float64 `json:"area"`
	SubmittedAt string  `json:"submitted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRecordSubmitted publishes a submission event for async processing
	PublishRecordSubmitted(ctx context.Context, event *RecordSubmittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
