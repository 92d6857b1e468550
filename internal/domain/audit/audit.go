// Package audit defines the request/response log kept for every API call.
package audit

import (
	"context"
	"time"
)

// Entry is one recorded API exchange. Payloads are stored as raw JSON text.
type Entry struct {
	ID              int64     `json:"id"`
	Endpoint        string    `json:"endpoint"`
	RequestPayload  string    `json:"requestPayload"`
	ResponsePayload string    `json:"responsePayload"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Log persists API exchanges. Record is called on the request path and must
// be cheap; implementations may buffer. A Record failure never fails the
// request that produced it.
type Log interface {
	Record(ctx context.Context, entry Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}
