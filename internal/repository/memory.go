package repository

import "context"

type MemoryResult struct {
	Content   string
	Category  string
	Timestamp int64
}

// MemoryRepo is the semantic transaction memory backing the chat assistant.
// Writes are best-effort and happen off the request path; the ledger in MySQL
// stays the source of truth.
type MemoryRepo interface {
	SaveMemory(ctx context.Context, userID string, transactionID uint, content, category string, vector []float32) error
	SearchSimilar(ctx context.Context, userID string, limit int, queryVector []float32) ([]MemoryResult, error)
	Delete(ctx context.Context, transactionID uint) error
}
