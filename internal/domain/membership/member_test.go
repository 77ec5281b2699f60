package membership

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	t.Run("creates pending member with normalized email", func(t *testing.T) {
		member, err := NewMember("Jane Doe", "  Jane@Example.COM ", "555-0100")
		require.NoError(t, err)

		assert.Equal(t, "Jane Doe", member.Name)
		assert.Equal(t, "jane@example.com", member.Email)
		assert.Equal(t, MemberStatusPending, member.Status)
		assert.Nil(t, member.PlanID)
		assert.Nil(t, member.EndDate)

		events := member.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeMemberRegistered, events[0].EventType())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewMember("  ", "jane@example.com", "")
		assert.ErrorIs(t, err, ErrMemberNameRequired)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := NewMember("Jane Doe", "", "")
		assert.ErrorIs(t, err, ErrMemberEmailRequired)
	})
}

func TestMemberSubscribe(t *testing.T) {
	newActivePlan := func(t *testing.T) *Plan {
		t.Helper()
		plan, err := NewPlan("MONTHLY", "Monthly", 1, decimal.NewFromInt(50))
		require.NoError(t, err)
		return plan
	}

	t.Run("activates member on plan", func(t *testing.T) {
		member, err := NewMember("Jane Doe", "jane@example.com", "")
		require.NoError(t, err)
		member.ClearDomainEvents()

		plan := newActivePlan(t)
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		require.NoError(t, member.Subscribe(plan, start, end))

		assert.Equal(t, MemberStatusActive, member.Status)
		require.NotNil(t, member.PlanID)
		assert.Equal(t, plan.ID, *member.PlanID)
		assert.Equal(t, start, *member.StartDate)
		assert.Equal(t, end, *member.EndDate)

		events := member.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeMemberSubscribed, events[0].EventType())
	})

	t.Run("renewal replaces the previous date range", func(t *testing.T) {
		member, err := NewMember("Jane Doe", "jane@example.com", "")
		require.NoError(t, err)
		plan := newActivePlan(t)

		firstStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, member.Subscribe(plan, firstStart, firstStart.AddDate(0, 1, 0)))

		secondStart := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
		secondEnd := secondStart.AddDate(0, 1, 0)
		require.NoError(t, member.Subscribe(plan, secondStart, secondEnd))

		assert.Equal(t, secondEnd, *member.EndDate)
	})

	t.Run("rejects inactive plan", func(t *testing.T) {
		member, err := NewMember("Jane Doe", "jane@example.com", "")
		require.NoError(t, err)
		plan := newActivePlan(t)
		plan.Deactivate()

		err = member.Subscribe(plan, time.Now(), time.Now().AddDate(0, 1, 0))
		assert.ErrorIs(t, err, ErrPlanInactive)
		assert.Equal(t, MemberStatusPending, member.Status)
	})
}

func TestMemberExpire(t *testing.T) {
	t.Run("active member becomes expired", func(t *testing.T) {
		member, err := NewMember("Jane Doe", "jane@example.com", "")
		require.NoError(t, err)
		plan, err := NewPlan("MONTHLY", "Monthly", 1, decimal.NewFromInt(50))
		require.NoError(t, err)
		require.NoError(t, member.Subscribe(plan, time.Now(), time.Now().AddDate(0, 1, 0)))
		member.ClearDomainEvents()

		member.Expire()

		assert.Equal(t, MemberStatusExpired, member.Status)
		events := member.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeMemberExpired, events[0].EventType())
	})

	t.Run("no-op for pending member", func(t *testing.T) {
		member, err := NewMember("Jane Doe", "jane@example.com", "")
		require.NoError(t, err)
		member.ClearDomainEvents()

		member.Expire()

		assert.Equal(t, MemberStatusPending, member.Status)
		assert.Empty(t, member.GetDomainEvents())
	})
}

func TestMemberIsActiveOn(t *testing.T) {
	member, err := NewMember("Jane Doe", "jane@example.com", "")
	require.NoError(t, err)
	plan, err := NewPlan("MONTHLY", "Monthly", 1, decimal.NewFromInt(50))
	require.NoError(t, err)

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, member.Subscribe(plan, start, end))

	assert.True(t, member.IsActiveOn(start))
	assert.True(t, member.IsActiveOn(time.Date(2026, 4, 15, 12, 30, 0, 0, time.UTC)))
	assert.True(t, member.IsActiveOn(end))
	assert.False(t, member.IsActiveOn(end.AddDate(0, 0, 1)))
	assert.False(t, member.IsActiveOn(start.AddDate(0, 0, -1)))

	member.Expire()
	assert.False(t, member.IsActiveOn(start))
}
