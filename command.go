package cmdpool

import (
	"time"

	"github.com/google/uuid"
)

// Action discriminates what a command asks a consumer to do. The core never
// interprets it; orchestrators define their own action vocabulary.
type Action string

// ActionNone is the zero action.
const ActionNone Action = ""

// Command is the unit of work transferred from producer to consumer.
// It is immutable once submitted; ownership transfers to whichever worker
// removes it from the channel. The submission timestamp supports end-to-end
// latency measurement on the consuming side.
//
// Channel and Pool are generic and do not require this type; it is the
// ready-made shape for orchestrators that do not need a custom one.
type Command[P any] struct {
	ID          uuid.UUID
	Action      Action
	Payload     P
	SubmittedAt time.Time
}

// NewCommand builds a command stamped with a fresh ID and the current time.
func NewCommand[P any](action Action, payload P) Command[P] {
	return Command[P]{
		ID:          uuid.New(),
		Action:      action,
		Payload:     payload,
		SubmittedAt: time.Now(),
	}
}

// Latency returns the time elapsed since the command was created.
func (c Command[P]) Latency() time.Duration {
	return time.Since(c.SubmittedAt)
}
