package embedding

import (
	"context"
	"math"
)

// Provider generates a vector embedding for a text. Implementations
// must return unit-length vectors so cosine distance in pgvector is
// accurate.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Normalize scales a vector to unit length. Required before storing or
// querying with cosine distance.
func Normalize(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
