package obj

import (
	"errors"

	"github.com/hasbyte1/go-utils/internal/kind"
)

// MaxDepth is the default bound on record nesting for deep operations.
const MaxDepth = kind.MaxDepth

// ErrTooDeep is returned by [DeepMerge], [MergeWith] and [DeepEqual] when
// record nesting exceeds the maximum depth, which includes records that
// contain themselves.
var ErrTooDeep = errors.New("obj: nesting exceeds maximum depth")
