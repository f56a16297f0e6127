package ubi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exitcode2 "github.com/ubi-network/ubi-core/actors/runtime/exitcode"
)

func TestActorErrorClassification(t *testing.T) {
	s := newTestState(t)
	a := mustAddr(t, 40)
	actor := Actor{}

	_, err := actor.Claim(s, a, 1)
	require.NoError(t, err)

	_, err = actor.Claim(s, a, 1)
	var actorErr *ActorError
	require.True(t, errors.As(err, &actorErr))
	assert.Equal(t, exitcode2.ErrIllegalState, actorErr.Code)
	assert.True(t, errors.Is(err, ErrNothingToClaim))
}
