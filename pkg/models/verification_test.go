package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerification(now time.Time) *VerificationRequest {
	return NewVerificationRequest("v-1", 100, "alice", VerificationTypeAutoCheckup, "start", now, 24*time.Hour)
}

func TestVerificationRequest_Lifecycle(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("starts pending with started event and 24h expiry", func(t *testing.T) {
		v := newTestVerification(now)
		assert.Equal(t, VerificationStatusPending, v.Status)
		assert.Equal(t, now.Add(24*time.Hour), v.ExpiresAt)
		assert.True(t, v.ExpiresAt.After(v.CreatedAt))

		pending := v.PendingEvents()
		require.Len(t, pending, 1)
		assert.Equal(t, events.TypeVerificationStarted, pending[0].EventType())
	})

	t.Run("failed attempts accumulate and fail at the cap", func(t *testing.T) {
		v := newTestVerification(now)
		v.DrainEvents()

		require.NoError(t, v.AddFailedAttempt("", "123.456.***-**", AttemptReasonInvalidFormat, now))
		assert.Equal(t, VerificationStatusPending, v.Status, "a failed attempt does not advance the status")
		assert.Equal(t, 2, v.AttemptsLeft())

		require.NoError(t, v.AddFailedAttempt("", "123.456.***-**", AttemptReasonInvalidFormat, now))
		require.NoError(t, v.AddFailedAttempt("", "123.456.***-**", AttemptReasonInvalidFormat, now))

		assert.Equal(t, VerificationStatusFailed, v.Status)
		assert.Equal(t, 0, v.AttemptsLeft())
		assert.Len(t, v.Attempts, MaxVerificationAttempts)

		evts := v.DrainEvents()
		last := evts[len(evts)-1]
		failed, ok := last.(events.VerificationFailed)
		require.True(t, ok)
		assert.Equal(t, FailReasonTooManyAttempts, failed.Reason)
		assert.Equal(t, 3, failed.AttemptCount)
	})

	t.Run("no mutation after terminal status", func(t *testing.T) {
		v := newTestVerification(now)
		require.NoError(t, v.Cancel("user request", now))

		assert.Error(t, v.AddFailedAttempt("", "x", AttemptReasonInvalidFormat, now))
		assert.Error(t, v.Cancel("again", now))
		assert.Error(t, v.Expire(now))
		assert.Error(t, v.CompleteSuccess("529.982.***-**", "hash", UpstreamClientSnapshot{ClientName: "Alice"}, now))
	})

	t.Run("success stores snapshot and emits attempt then completed", func(t *testing.T) {
		v := newTestVerification(now)
		v.DrainEvents()

		snap := UpstreamClientSnapshot{ClientName: "Alice", ServiceName: "Fibra 500", ServiceStatus: "Servico Habilitado"}
		require.NoError(t, v.CompleteSuccess("529.982.***-**", "hash-abc", snap, now))

		assert.Equal(t, VerificationStatusCompleted, v.Status)
		assert.Equal(t, "hash-abc", v.VerifiedCPFHash)
		require.NotNil(t, v.Client)
		assert.Equal(t, "Alice", v.Client.ClientName)
		require.NotNil(t, v.CompletedAt)

		evts := v.DrainEvents()
		require.Len(t, evts, 2)
		assert.Equal(t, events.TypeVerificationAttemptMade, evts[0].EventType())
		assert.Equal(t, events.TypeVerificationCompleted, evts[1].EventType())
	})

	t.Run("success without verified CPF is rejected", func(t *testing.T) {
		v := newTestVerification(now)
		err := v.CompleteSuccess("529.982.***-**", "", UpstreamClientSnapshot{}, now)
		assert.Error(t, err)
	})

	t.Run("duplicate rejection leaves the request pending", func(t *testing.T) {
		v := newTestVerification(now)
		v.DrainEvents()

		require.NoError(t, v.AddFailedAttempt("52998224725", "529.982.***-**", AttemptReasonDuplicateConflict, now))
		assert.Equal(t, VerificationStatusPending, v.Status)
		require.Len(t, v.Attempts, 1)
		assert.False(t, v.Attempts[0].Success)
		assert.True(t, v.CanAttempt(now), "the request stays open for resolution or another submission")
	})
}

func TestVerificationRequest_ContestedCPF(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVerification(now)

	assert.Empty(t, v.ContestedCPF())

	require.NoError(t, v.AddFailedAttempt("52998224725", "529.982.***-**", AttemptReasonInvalidFormat, now))
	assert.Empty(t, v.ContestedCPF(), "digits are retained only for duplicate conflicts")

	require.NoError(t, v.AddFailedAttempt("52998224725", "529.982.***-**", AttemptReasonDuplicateConflict, now))
	assert.Equal(t, "52998224725", v.ContestedCPF())

	t.Run("digits never serialize", func(t *testing.T) {
		raw, err := json.Marshal(v.Attempts)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "52998224725")
	})
}

func TestVerificationRequest_Expiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	v := newTestVerification(now)

	assert.False(t, v.IsExpired(now))
	assert.True(t, v.CanAttempt(now))

	later := now.Add(25 * time.Hour)
	assert.True(t, v.IsExpired(later))
	assert.False(t, v.CanAttempt(later))

	require.NoError(t, v.Expire(later))
	assert.Equal(t, VerificationStatusExpired, v.Status)
	assert.False(t, v.IsExpired(later), "terminal requests are not reported as expired")
}

func TestVerificationRequest_DrainEventsClears(t *testing.T) {
	now := time.Now().UTC()
	v := newTestVerification(now)

	first := v.DrainEvents()
	assert.NotEmpty(t, first)
	assert.Empty(t, v.DrainEvents())
	assert.Empty(t, v.PendingEvents())
}
