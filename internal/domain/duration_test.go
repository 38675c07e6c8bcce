package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ozo-attend/internal/domain"
)

func TestParseDuration(t *testing.T) {
	min, err := domain.ParseDuration("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, min)

	min, err = domain.ParseDuration("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, min)

	for _, bad := range []string{"1030", "aa:bb", "10:", ":30", ""} {
		_, err := domain.ParseDuration(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidDuration, "input %q", bad)
	}
}

func TestFormatDurationRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "00:01", "01:00", "09:59", "10:30", "27:45"} {
		min, err := domain.ParseDuration(s)
		require.NoError(t, err)
		assert.Equal(t, s, domain.FormatDuration(min))
	}
}

func TestFormatDurationSign(t *testing.T) {
	assert.Equal(t, "-02:00", domain.FormatDuration(-120))
	assert.Equal(t, "-00:01", domain.FormatDuration(-1))
	assert.Equal(t, "00:00", domain.FormatDuration(0))
}

func TestSubtractDurations(t *testing.T) {
	got, err := domain.SubtractDurations("10:00", []string{"01:00", "02:00"})
	require.NoError(t, err)
	assert.Equal(t, "07:00", got)

	got, err = domain.SubtractDurations("10:00", []string{"10:00", "02:00"})
	require.NoError(t, err)
	assert.Equal(t, "-02:00", got)

	got, err = domain.SubtractDurations("08:00", nil)
	require.NoError(t, err)
	assert.Equal(t, "08:00", got)

	_, err = domain.SubtractDurations("08:00", []string{"bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}
