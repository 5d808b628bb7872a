package arr

import (
	"errors"

	"github.com/hasbyte1/go-utils/internal/kind"
)

// MaxDepth is the deepest slice nesting [Flatten] will walk.
const MaxDepth = kind.MaxDepth

// Sentinel errors returned by slice helpers.
var (
	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("arr: chunk size must be greater than 0")

	// ErrTooDeep is returned when nested input exceeds [MaxDepth] levels,
	// which includes slices that contain themselves.
	ErrTooDeep = errors.New("arr: nesting exceeds maximum depth")
)
