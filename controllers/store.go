package controllers

import (
	"context"
	"time"
)

// DocumentStore is the slice of the store adapter the handlers depend on.
// Handlers take it as an interface so tests can substitute an in-memory
// implementation.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, fields any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter map[string]any, limit int64) ([]map[string]any, error)
}

// requestContext returns the short-lived context used for store round-trips
// within a single request.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
