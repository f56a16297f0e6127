package exitcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ubi-network/ubi-core/actors/runtime/exitcode"
)

func TestExitCodeStringAndIsError(t *testing.T) {
	assert.Equal(t, "Ok", exitcode.Ok.String())
	assert.False(t, exitcode.Ok.IsError())

	assert.Equal(t, "ErrForbidden", exitcode.ErrForbidden.String())
	assert.True(t, exitcode.ErrForbidden.IsError())
}
