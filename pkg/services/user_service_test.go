package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/models"
)

func TestUserService_GetOrCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.GetOrCreate(ctx, 42, "maria")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusPendingVerification, u.Status)
	assert.False(t, u.IsAdmin)

	t.Run("idempotent", func(t *testing.T) {
		again, err := f.users.GetOrCreate(ctx, 42, "maria")
		require.NoError(t, err)
		assert.Equal(t, u.ID, again.ID)
	})

	t.Run("username refresh", func(t *testing.T) {
		renamed, err := f.users.GetOrCreate(ctx, 42, "maria_s")
		require.NoError(t, err)
		assert.Equal(t, "maria_s", renamed.Username)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := f.users.Get(ctx, 777)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_BanUnban(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.GetOrCreate(ctx, 1, "admin")
	require.NoError(t, err)
	require.NoError(t, f.users.SetAdmin(ctx, 1, true))
	_, err = f.users.GetOrCreate(ctx, 2, "target")
	require.NoError(t, err)

	t.Run("non-admin cannot ban", func(t *testing.T) {
		err := f.users.Ban(ctx, 2, 1, "revenge")
		require.Error(t, err)
		assert.Equal(t, CodeNotAdmin, ErrorCode(err))
	})

	t.Run("self-ban rejected", func(t *testing.T) {
		err := f.users.Ban(ctx, 1, 1, "oops")
		require.Error(t, err)
		assert.Equal(t, CodeCannotBanSelf, ErrorCode(err))
	})

	t.Run("ban suspends and emits", func(t *testing.T) {
		require.NoError(t, f.users.Ban(ctx, 1, 2, "abuse"))
		u, err := f.users.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, models.UserStatusSuspended, u.Status)
		assert.Equal(t, 1, f.recorder.countOf(events.TypeUserBanned))
	})

	t.Run("double ban reported", func(t *testing.T) {
		err := f.users.Ban(ctx, 1, 2, "again")
		require.Error(t, err)
		assert.Equal(t, CodeUserAlreadyBanned, ErrorCode(err))
	})

	t.Run("unban restores active", func(t *testing.T) {
		require.NoError(t, f.users.Unban(ctx, 1, 2))
		u, err := f.users.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, models.UserStatusActive, u.Status)
		assert.Equal(t, 1, f.recorder.countOf(events.TypeUserUnbanned))
	})

	t.Run("unban of unbanned user rejected", func(t *testing.T) {
		err := f.users.Unban(ctx, 1, 2)
		require.Error(t, err)
		assert.Equal(t, CodeUserNotBanned, ErrorCode(err))
	})
}

func TestDuplicateService_RiskLevels(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "none", f.dupes.RiskLevel(0))
	assert.Equal(t, "low", f.dupes.RiskLevel(1))
	assert.Equal(t, "medium", f.dupes.RiskLevel(2))
	assert.Equal(t, "high", f.dupes.RiskLevel(3))
	assert.Equal(t, "high", f.dupes.RiskLevel(9))
}

func TestDuplicateService_Resolve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// User 100 holds the CPF; user 200's verification collided with it.
	f.verifyUser(t, ctx, 100, "holder")
	_, err := f.users.GetOrCreate(ctx, 200, "claimant")
	require.NoError(t, err)

	holder, err := f.users.Get(ctx, 100)
	require.NoError(t, err)
	hash := holder.CPFHash
	require.NotEmpty(t, hash)

	t.Run("merge reassigns the CPF to the primary", func(t *testing.T) {
		err := f.dupes.Resolve(ctx, ResolveDuplicateInput{
			CPFHash:        hash,
			ClaimantUserID: 200,
			PrimaryUserID:  200,
			Action:         ResolveActionMerge,
		})
		require.NoError(t, err)

		primary, err := f.users.Get(ctx, 200)
		require.NoError(t, err)
		assert.Equal(t, hash, primary.CPFHash)
		assert.Equal(t, testCPFMasked, primary.CPFMasked)
		assert.Equal(t, models.UserStatusActive, primary.Status)

		old, err := f.users.Get(ctx, 100)
		require.NoError(t, err)
		assert.Empty(t, old.CPFHash)
		assert.Equal(t, models.UserStatusInactive, old.Status)

		require.Equal(t, 1, f.recorder.countOf(events.TypeCPFRemapped))
		remapped := f.recorder.last(events.TypeCPFRemapped).(events.CPFRemapped)
		assert.Equal(t, int64(200), remapped.PrimaryUserID)
		assert.Equal(t, []int64{100}, remapped.DuplicateUserIDs)
	})

	t.Run("block suspends the claimant", func(t *testing.T) {
		err := f.dupes.Resolve(ctx, ResolveDuplicateInput{
			CPFHash:        hash,
			ClaimantUserID: 100,
			Action:         ResolveActionBlock,
		})
		require.NoError(t, err)

		blocked, err := f.users.Get(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, models.UserStatusSuspended, blocked.Status)
	})

	t.Run("manual review escalates", func(t *testing.T) {
		err := f.dupes.Resolve(ctx, ResolveDuplicateInput{
			CPFHash:        hash,
			ClaimantUserID: 100,
			Action:         ResolveActionManualReview,
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f.recorder.countOf(events.TypeAdminNotificationRequired), 1)
	})

	t.Run("unknown action rejected", func(t *testing.T) {
		err := f.dupes.Resolve(ctx, ResolveDuplicateInput{CPFHash: hash, Action: "purge"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
