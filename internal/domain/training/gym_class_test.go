package training

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGymClass(t *testing.T) {
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("creates scheduled class", func(t *testing.T) {
		class, err := NewGymClass("Spin", uuid.New(), start, end, 20)
		require.NoError(t, err)
		assert.Equal(t, 20, class.Capacity)
		assert.Equal(t, 0, class.Enrolled)
	})

	t.Run("rejects zero capacity", func(t *testing.T) {
		_, err := NewGymClass("Spin", uuid.New(), start, end, 0)
		assert.ErrorIs(t, err, ErrClassCapacityInvalid)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		_, err := NewGymClass("Spin", uuid.New(), end, start, 20)
		assert.ErrorIs(t, err, ErrClassTimeInvalid)
	})
}

func TestGymClassEnroll(t *testing.T) {
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	class, err := NewGymClass("Yoga", uuid.New(), start, start.Add(time.Hour), 2)
	require.NoError(t, err)

	require.NoError(t, class.Enroll())
	require.NoError(t, class.Enroll())
	assert.ErrorIs(t, class.Enroll(), ErrClassFull)

	class.Withdraw()
	assert.Equal(t, 1, class.Enrolled)
	require.NoError(t, class.Enroll())
}
