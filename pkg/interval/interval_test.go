// SPDX-License-Identifier: AGPL-3.0-only

package interval

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateFormat, value)
	require.NoError(t, err)
	return parsed
}

func TestNew(t *testing.T) {
	t.Parallel()

	earlier := mustDate(t, "2011-09-01")
	later := mustDate(t, "2011-10-01")

	t.Run("ordered bounds are kept", func(t *testing.T) {
		t.Parallel()
		i, err := New(earlier, later)
		require.NoError(t, err)
		assert.Equal(t, earlier, i.Start())
		assert.Equal(t, later, i.End())
	})

	t.Run("reversed bounds are normalized", func(t *testing.T) {
		t.Parallel()
		i, err := New(later, earlier)
		require.NoError(t, err)
		assert.Equal(t, earlier, i.Start())
		assert.Equal(t, later, i.End())
	})

	t.Run("equal bounds build a point interval", func(t *testing.T) {
		t.Parallel()
		i, err := New(earlier, earlier)
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), i.Duration())
	})

	t.Run("zero bound is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := New(time.Time{}, later)
		require.ErrorIs(t, err, ErrInvalidInterval)

		_, err = New(earlier, time.Time{})
		require.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("day granularity", func(t *testing.T) {
		t.Parallel()
		i, err := Parse("2011-09-01", "2011-10-01")
		require.NoError(t, err)
		assert.Equal(t, mustDate(t, "2011-09-01"), i.Start())
		assert.Equal(t, mustDate(t, "2011-10-01"), i.End())
	})

	t.Run("RFC 3339", func(t *testing.T) {
		t.Parallel()
		i, err := Parse("2011-09-01T06:30:00Z", "2011-09-01T18:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, 11*time.Hour+30*time.Minute, i.Duration())
	})

	t.Run("reversed dates are normalized", func(t *testing.T) {
		t.Parallel()
		i, err := Parse("2011-10-01", "2011-09-01")
		require.NoError(t, err)
		assert.True(t, i.Start().Before(i.End()))
	})

	t.Run("malformed timestamp is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("01/09/2011", "2011-10-01")
		require.ErrorIs(t, err, ErrInvalidInterval)
		assert.ErrorContains(t, err, "01/09/2011")
	})
}

func TestIntervalAccessors(t *testing.T) {
	t.Parallel()

	i := MustNew(mustDate(t, "2011-09-01"), mustDate(t, "2011-10-01"))

	assert.Equal(t, 30*24*time.Hour, i.Duration())
	assert.False(t, i.IsZero())
	assert.True(t, Interval{}.IsZero())
	assert.Equal(t, "[2011-09-01, 2011-10-01]", i.String())

	other := MustNew(mustDate(t, "2011-09-01"), mustDate(t, "2011-10-01"))
	assert.True(t, i.Equal(other))
	assert.False(t, i.Equal(MustNew(mustDate(t, "2011-09-01"), mustDate(t, "2011-11-01"))))
}

func TestMustNewPanicsOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustNew(time.Time{}, time.Time{})
	})
}

func TestErrInvalidIntervalIsWrapped(t *testing.T) {
	t.Parallel()

	_, err := Parse("", "2011-10-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInterval))
}
