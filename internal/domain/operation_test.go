package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ozo-attend/internal/domain"
)

func TestParseOperation(t *testing.T) {
	op, err := domain.ParseOperation("clock-in")
	require.NoError(t, err)
	assert.Equal(t, domain.OperationClockIn, op)

	op, err = domain.ParseOperation("clock-out")
	require.NoError(t, err)
	assert.Equal(t, domain.OperationClockOut, op)
}

func TestParseOperationRejectsUnknownTokens(t *testing.T) {
	for _, bad := range []string{"foo", "clockin", "CLOCK-IN", ""} {
		_, err := domain.ParseOperation(bad)
		require.ErrorIs(t, err, domain.ErrInvalidOperation, "token %q", bad)
		assert.Contains(t, err.Error(), bad)
	}
}
