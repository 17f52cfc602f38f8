package cmdpool

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewCommand_StampsIdentityAndTime(t *testing.T) {
	t.Parallel()

	before := time.Now()
	cmd := NewCommand(Action("flap"), 1)
	after := time.Now()

	require.NotEqual(t, uuid.Nil, cmd.ID)
	require.Equal(t, Action("flap"), cmd.Action)
	require.Equal(t, 1, cmd.Payload)
	require.False(t, cmd.SubmittedAt.Before(before))
	require.False(t, cmd.SubmittedAt.After(after))
}

func TestNewCommand_DistinctIDs(t *testing.T) {
	t.Parallel()

	a := NewCommand[struct{}](ActionNone, struct{}{})
	b := NewCommand[struct{}](ActionNone, struct{}{})
	require.NotEqual(t, a.ID, b.ID)
}

func TestCommand_Latency(t *testing.T) {
	t.Parallel()

	cmd := NewCommand(Action("flap"), struct{}{})
	time.Sleep(5 * time.Millisecond)
	require.GreaterOrEqual(t, cmd.Latency(), 5*time.Millisecond)
}
