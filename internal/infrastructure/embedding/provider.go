package embedding

import "context"

// Provider turns text into a vector.
type Provider interface {
	GetVector(ctx context.Context, text string) ([]float32, error)
}
