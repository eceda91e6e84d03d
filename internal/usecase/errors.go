package usecase

import (
	"errors"
	"fmt"
)

// Domain outcomes of the enrollment and verification flows. These are
// expected user-input results, not failures: the handler layer maps them
// to client errors with explanatory text.
var (
	// ErrNoFaceDetected means the extractor found no face in the image.
	ErrNoFaceDetected = errors.New("no face detected")
	// ErrAmbiguousInput means more than one face was found during
	// enrollment, where guessing the subject is refused.
	ErrAmbiguousInput = errors.New("multiple faces detected")
)

// DuplicateFaceError rejects an enrollment whose face collides with an
// already-enrolled identity.
type DuplicateFaceError struct {
	ConflictingUserID string
}

// Error implements the error interface.
func (e *DuplicateFaceError) Error() string {
	return fmt.Sprintf("face already registered under ID %q", e.ConflictingUserID)
}
