// Package extractor defines the contract with the external face-analysis
// service: detected faces with bounding boxes and embeddings. The service
// itself (model choice, detection parameters) is a deployment concern.
package extractor

import (
	"context"

	"github.com/example/faceid/internal/embedding"
)

// BoundingBox locates a detected face in image coordinates.
type BoundingBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Area returns the box area in square pixels.
func (b BoundingBox) Area() float64 {
	return (b.X1 - b.X0) * (b.Y1 - b.Y0)
}

// DetectedFace is one face found in a request image. It is consumed
// within the request and never persisted.
type DetectedFace struct {
	BBox      BoundingBox      `json:"bbox"`
	Embedding embedding.Vector `json:"embedding"`
}

// Client exposes the subset of extractor functionality used by the
// enrollment and verification flows.
type Client interface {
	Detect(ctx context.Context, image []byte) ([]DetectedFace, error)
}

// Largest selects the face with the largest bounding-box area. The first
// face wins ties, so selection is deterministic for equal-sized boxes.
// Callers must not pass an empty slice.
func Largest(faces []DetectedFace) DetectedFace {
	best := faces[0]
	bestArea := best.BBox.Area()
	for _, face := range faces[1:] {
		if area := face.BBox.Area(); area > bestArea {
			best = face
			bestArea = area
		}
	}
	return best
}
