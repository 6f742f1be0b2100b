package todo

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out item identities. Implementations must never return
// the same value twice for one List.
type IDGenerator interface {
	NextID() string
}

// UUIDv7 generates time-ordered UUIDs, so ids sort by creation time without
// colliding when several items land in the same millisecond.
type UUIDv7 struct{}

func (UUIDv7) NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		return uuid.NewString()
	}
	return id.String()
}

// Sequence is a monotonic counter: 1, 2, 3, ...
type Sequence struct {
	n atomic.Uint64
}

func (s *Sequence) NextID() string {
	return strconv.FormatUint(s.n.Add(1), 10)
}

// NewIDGenerator resolves a generator by its config name.
func NewIDGenerator(name string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uuid", "uuidv7":
		return UUIDv7{}, nil
	case "sequence", "seq":
		return &Sequence{}, nil
	default:
		return nil, fmt.Errorf("todo: unknown id generator %q", name)
	}
}
