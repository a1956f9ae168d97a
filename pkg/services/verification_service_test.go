package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/ent/verificationattempt"
	"github.com/atlasfibra/backoffice/pkg/cpf"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/models"
)

func TestVerificationService_SuccessfulFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedActiveClient()

	v, err := f.verifications.StartVerification(ctx, 42, "maria", models.VerificationTypeSupportRequest, "start")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatusPending, v.Status)

	v, err = f.verifications.SubmitCPF(ctx, 42, "111.444.777-35")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatusCompleted, v.Status)
	assert.Equal(t, testCPFMasked, v.VerifiedCPFMasked)
	require.NotNil(t, v.Client)
	assert.Equal(t, "Maria Souza", v.Client.ClientName)

	t.Run("user is activated with hashed CPF", func(t *testing.T) {
		u, err := f.users.Get(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, models.UserStatusActive, u.Status)
		assert.Equal(t, testCPFMasked, u.CPFMasked)
		assert.NotEmpty(t, u.CPFHash)
		assert.NotContains(t, u.CPFHash, testCPF)
		require.NotNil(t, u.Service)
		assert.Equal(t, "srv-77", u.Service.ServiceID)
	})

	t.Run("events published after persistence", func(t *testing.T) {
		types := f.recorder.types()
		assert.Contains(t, types, events.TypeVerificationStarted)
		assert.Contains(t, types, events.TypeVerificationAttemptMade)
		assert.Contains(t, types, events.TypeVerificationCompleted)
		assert.Contains(t, types, events.TypeUserRegistered)
	})

	t.Run("plaintext CPF never appears in events", func(t *testing.T) {
		done := f.recorder.last(events.TypeVerificationCompleted).(events.VerificationCompleted)
		assert.Equal(t, testCPFMasked, done.CPFMasked)
		assert.NotContains(t, done.CPFMasked, testCPF[6:])
	})
}

func TestVerificationService_StartTwiceRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.verifications.StartVerification(ctx, 1, "a", models.VerificationTypeAutoCheckup, "start")
	require.NoError(t, err)

	_, err = f.verifications.StartVerification(ctx, 1, "a", models.VerificationTypeAutoCheckup, "start")
	require.Error(t, err)
	assert.Equal(t, CodeVerificationAlreadyPending, ErrorCode(err))
}

func TestVerificationService_InvalidFormatConsumesAttempts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.verifications.StartVerification(ctx, 7, "bob", models.VerificationTypeAutoCheckup, "start")
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		v, err := f.verifications.SubmitCPF(ctx, 7, "not-a-cpf")
		require.Error(t, err)
		assert.Equal(t, CodeInvalidCPFFormat, ErrorCode(err))
		assert.Equal(t, models.VerificationStatusPending, v.Status, "failed attempts do not advance the status")
		assert.Equal(t, models.MaxVerificationAttempts-i, v.AttemptsLeft())
	}

	// Third failure exhausts the request.
	v, err := f.verifications.SubmitCPF(ctx, 7, "123")
	require.Error(t, err)
	assert.Equal(t, models.VerificationStatusFailed, v.Status)
	assert.Equal(t, 1, f.recorder.countOf(events.TypeVerificationFailed))

	// Nothing left to attempt against.
	_, err = f.verifications.SubmitCPF(ctx, 7, testCPF)
	require.Error(t, err)
	assert.Equal(t, CodeNoPendingVerification, ErrorCode(err))
}

func TestVerificationService_CPFNotFoundUpstream(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.verifications.StartVerification(ctx, 8, "carla", models.VerificationTypeAutoCheckup, "start")
	require.NoError(t, err)

	v, err := f.verifications.SubmitCPF(ctx, 8, testCPF)
	require.Error(t, err)
	assert.Equal(t, CodeCPFNotFound, ErrorCode(err))
	require.Len(t, v.Attempts, 1)
	assert.Equal(t, models.AttemptReasonNotFoundUpstream, v.Attempts[0].FailureReason)
	assert.Equal(t, testCPFMasked, v.Attempts[0].CPFMasked)
}

func TestVerificationService_TransientUpstreamFailureKeepsAttempt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedActiveClient()

	_, err := f.verifications.StartVerification(ctx, 9, "davi", models.VerificationTypeAutoCheckup, "start")
	require.NoError(t, err)

	f.hub.FailNext(&hubsoft.APIError{StatusCode: 503, Code: "upstream_unavailable", Retryable: true})
	v, err := f.verifications.SubmitCPF(ctx, 9, testCPF)
	require.Error(t, err)
	assert.Equal(t, CodeUpstreamUnavailable, ErrorCode(err))
	assert.Empty(t, v.Attempts, "transient failures must not consume attempts")

	// Same submission succeeds once the upstream recovers.
	v, err = f.verifications.SubmitCPF(ctx, 9, testCPF)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatusCompleted, v.Status)
}

func TestVerificationService_DuplicateCPFBlocked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 100, "first")

	_, err := f.verifications.StartVerification(ctx, 200, "second", models.VerificationTypeAutoCheckup, "start")
	require.NoError(t, err)

	v, err := f.verifications.SubmitCPF(ctx, 200, testCPF)
	require.Error(t, err)
	assert.Equal(t, CodeCPFDuplicate, ErrorCode(err))
	assert.Equal(t, models.VerificationStatusPending, v.Status, "the request stays open for resolution")
	require.Len(t, v.Attempts, 1)
	assert.Equal(t, models.AttemptReasonDuplicateConflict, v.Attempts[0].FailureReason)

	require.Equal(t, 1, f.recorder.countOf(events.TypeCPFDuplicateDetected))
	dup := f.recorder.last(events.TypeCPFDuplicateDetected).(events.CPFDuplicateDetected)
	assert.Equal(t, []int64{100}, dup.HolderUserIDs)
	assert.Equal(t, "low", dup.Risk)
	assert.Equal(t, testCPFMasked, dup.CPFMasked)
	assert.False(t, strings.Contains(dup.CPFHash, testCPF))
}

func TestVerificationService_CompleteAfterResolution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.verifyUser(t, ctx, 100, "first")

	_, err := f.verifications.StartVerification(ctx, 200, "second", models.VerificationTypeAutoCheckup, "start")
	require.NoError(t, err)

	v, err := f.verifications.SubmitCPF(ctx, 200, testCPF)
	require.Error(t, err)
	assert.Equal(t, CodeCPFDuplicate, ErrorCode(err))

	parsed, err := cpf.Parse(testCPF)
	require.NoError(t, err)
	require.NoError(t, f.dupes.Resolve(ctx, ResolveDuplicateInput{
		CPFHash:        parsed.Hash(testSalt),
		ClaimantUserID: 200,
		PrimaryUserID:  200,
		Action:         ResolveActionMerge,
	}))

	resolved, err := f.verifications.CompleteAfterResolution(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatusCompleted, resolved.Status)
	assert.Equal(t, testCPFMasked, resolved.VerifiedCPFMasked)
	require.NotNil(t, resolved.Client)
	assert.Equal(t, "Maria Souza", resolved.Client.ClientName)

	t.Run("claimant ends up active with the CPF", func(t *testing.T) {
		u, err := f.users.Get(ctx, 200)
		require.NoError(t, err)
		assert.Equal(t, models.UserStatusActive, u.Status)
		assert.Equal(t, parsed.Hash(testSalt), u.CPFHash)
	})

	t.Run("previous holder lost the CPF", func(t *testing.T) {
		u, err := f.users.Get(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, models.UserStatusInactive, u.Status)
		assert.Empty(t, u.CPFHash)
	})

	t.Run("completion runs the full submission path", func(t *testing.T) {
		types := f.recorder.types()
		assert.Contains(t, types, events.TypeCPFRemapped)
		assert.Equal(t, 2, f.recorder.countOf(events.TypeVerificationCompleted))
		assert.Equal(t, 2, f.recorder.countOf(events.TypeUserRegistered))
	})

	t.Run("retained digits are cleared once completed", func(t *testing.T) {
		rows, err := f.client.VerificationAttempt.Query().
			Where(verificationattempt.VerificationID(v.ID)).
			All(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		for _, row := range rows {
			assert.Empty(t, row.CpfProvided)
		}
	})

	t.Run("a second resolution is rejected", func(t *testing.T) {
		_, err := f.verifications.CompleteAfterResolution(ctx, v.ID)
		require.Error(t, err)
		assert.Equal(t, CodeNoPendingVerification, ErrorCode(err))
	})
}

func TestVerificationService_CompleteAfterResolutionWithoutConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, err := f.verifications.StartVerification(ctx, 33, "gil", models.VerificationTypeAutoCheckup, "start")
	require.NoError(t, err)

	_, err = f.verifications.CompleteAfterResolution(ctx, v.ID)
	require.Error(t, err)
	assert.Equal(t, CodeNoPendingVerification, ErrorCode(err))

	_, err = f.verifications.CompleteAfterResolution(ctx, "missing-id")
	require.Error(t, err)
	assert.Equal(t, CodeNoPendingVerification, ErrorCode(err))
}

func TestVerificationService_UpstreamRateLimitSurfaced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedActiveClient()

	_, err := f.verifications.StartVerification(ctx, 12, "noe", models.VerificationTypeAutoCheckup, "start")
	require.NoError(t, err)

	f.hub.FailNext(&hubsoft.APIError{
		StatusCode: 429,
		Code:       "upstream_rate_limited",
		Retryable:  true,
		RetryAfter: 30 * time.Second,
	})
	v, err := f.verifications.SubmitCPF(ctx, 12, testCPF)
	require.Error(t, err)
	assert.Equal(t, CodeUpstreamRateLimited, ErrorCode(err))
	assert.Equal(t, 30, ErrorData(err)["retry_after_seconds"])
	assert.Empty(t, v.Attempts, "a throttled lookup must not consume attempts")
}

func TestVerificationService_DailyAttemptCap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// First request burns its three attempts.
	_, err := f.verifications.StartVerification(ctx, 11, "eva", models.VerificationTypeAutoCheckup, "start")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = f.verifications.SubmitCPF(ctx, 11, "bogus")
		require.Error(t, err)
	}

	// Second request gets two more before the rolling 24 h cap of five.
	_, err = f.verifications.StartVerification(ctx, 11, "eva", models.VerificationTypeAutoCheckup, "retry")
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = f.verifications.SubmitCPF(ctx, 11, "bogus")
		require.Error(t, err)
		assert.Equal(t, CodeInvalidCPFFormat, ErrorCode(err))
	}

	_, err = f.verifications.SubmitCPF(ctx, 11, "bogus")
	require.Error(t, err)
	assert.Equal(t, CodeRateLimited, ErrorCode(err))

	t.Run("rejection carries the earliest retry time", func(t *testing.T) {
		data := ErrorData(err)
		require.NotNil(t, data)
		retryAfter, ok := data["retry_after"].(time.Time)
		require.True(t, ok, "retry_after must be a timestamp")
		assert.WithinDuration(t, f.clock.Now().Add(24*time.Hour), retryAfter, time.Second)
	})

	t.Run("window slides", func(t *testing.T) {
		f.clock.Advance(25 * time.Hour)
		// The second request expired meanwhile; starting a new one is allowed
		// because the old attempts fell out of the window.
		_, err := f.verifications.StartVerification(ctx, 11, "eva", models.VerificationTypeAutoCheckup, "later")
		require.NoError(t, err)
		v, err := f.verifications.SubmitCPF(ctx, 11, "bogus")
		require.Error(t, err)
		assert.Equal(t, CodeInvalidCPFFormat, ErrorCode(err))
		assert.Len(t, v.Attempts, 1)
	})
}

func TestVerificationService_Expiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("lazy expiry on submit", func(t *testing.T) {
		_, err := f.verifications.StartVerification(ctx, 21, "ana", models.VerificationTypeAutoCheckup, "start")
		require.NoError(t, err)
		f.clock.Advance(25 * time.Hour)

		v, err := f.verifications.SubmitCPF(ctx, 21, testCPF)
		require.Error(t, err)
		assert.Equal(t, CodeCannotAttempt, ErrorCode(err))
		assert.Equal(t, models.VerificationStatusExpired, v.Status)
		assert.Equal(t, 1, f.recorder.countOf(events.TypeVerificationExpired))
	})

	t.Run("sweep expires stale requests", func(t *testing.T) {
		_, err := f.verifications.StartVerification(ctx, 22, "bia", models.VerificationTypeAutoCheckup, "start")
		require.NoError(t, err)
		f.clock.Advance(25 * time.Hour)

		processed, failures, err := f.verifications.ExpireSweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, processed)
		assert.Empty(t, failures)

		_, err = f.verifications.GetActive(ctx, 22)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestVerificationService_Cancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.verifications.StartVerification(ctx, 31, "leo", models.VerificationTypeAutoCheckup, "start")
	require.NoError(t, err)

	v, err := f.verifications.CancelVerification(ctx, 31, "user request")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatusCancelled, v.Status)
	assert.Equal(t, 1, f.recorder.countOf(events.TypeVerificationCancelled))

	_, err = f.verifications.CancelVerification(ctx, 31, "again")
	require.Error(t, err)
	assert.Equal(t, CodeCannotCancelTerminal, ErrorCode(err))
}
