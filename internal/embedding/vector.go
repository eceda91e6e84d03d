// Package embedding holds the feature-vector type produced by the face
// extractor and the similarity metric used to compare enrolled identities.
package embedding

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrDimensionMismatch reports a comparison between vectors of different
	// (or zero) length.
	ErrDimensionMismatch = errors.New("embedding: dimension mismatch")
	// ErrDegenerateVector reports a zero-norm vector, for which cosine
	// similarity is undefined.
	ErrDegenerateVector = errors.New("embedding: degenerate zero-norm vector")
)

// Vector is a fixed-dimension face embedding. The dimension is set by the
// extractor model and is not validated here beyond equality at comparison
// time.
type Vector []float64

// Cosine returns the cosine similarity between a and b in [-1, 1].
// Inputs are not required to be pre-normalized.
func Cosine(a, b Vector) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrDimensionMismatch, len(a), len(b))
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0, ErrDegenerateVector
	}

	sim := floats.Dot(a, b) / (normA * normB)
	// Clamp float error so callers can rely on [-1, 1].
	if sim > 1 {
		sim = 1
	}
	if sim < -1 {
		sim = -1
	}
	return sim, nil
}

// Value encodes the vector as JSON for storage in a json/jsonb column.
func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal([]float64(v))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan decodes a JSON column value into the vector.
func (v *Vector) Scan(src interface{}) error {
	if src == nil {
		*v = nil
		return nil
	}
	var data []byte
	switch value := src.(type) {
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return fmt.Errorf("embedding: cannot scan %T into Vector", src)
	}
	return json.Unmarshal(data, (*[]float64)(v))
}
