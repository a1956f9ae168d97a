// Package cleanup provides data retention and background sweep services.
package cleanup

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/atlasfibra/backoffice/pkg/cache"
	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/models"
	"github.com/atlasfibra/backoffice/pkg/services"
)

// Service periodically enforces the engine's background policies:
//   - Expires stale verification requests
//   - Times out idle support conversations
//   - Re-enqueues tickets whose upstream sync failed
//   - Drops expired cache entries
//   - Purges terminal records past the retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config        *config.RetentionConfig
	verifications *services.VerificationService
	conversations *services.ConversationService
	tickets       *services.TicketService
	integrations  *services.IntegrationService
	cache         *cache.Cache

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	verifications *services.VerificationService,
	conversations *services.ConversationService,
	tickets *services.TicketService,
	integrations *services.IntegrationService,
	c *cache.Cache,
) *Service {
	return &Service{
		config:        cfg,
		verifications: verifications,
		conversations: conversations,
		tickets:       tickets,
		integrations:  integrations,
		cache:         c,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"record_retention_days", s.config.RecordRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes every sweep once.
func (s *Service) RunAll(ctx context.Context) {
	s.expireVerifications(ctx)
	s.timeoutConversations(ctx)
	s.requeueFailedSyncs(ctx)
	s.clearExpiredCache()
	s.purgeOldRecords(ctx)
}

func (s *Service) expireVerifications(_ context.Context) {
	count, failures, err := s.verifications.ExpireSweep(context.Background())
	if err != nil {
		slog.Error("Sweep: verification expiry failed", "error", err)
		return
	}
	for _, failure := range failures {
		slog.Error("Sweep: verification expiry item failed", "detail", failure)
	}
	if count > 0 {
		slog.Info("Sweep: expired stale verification requests", "count", count)
	}
}

func (s *Service) timeoutConversations(_ context.Context) {
	count, err := s.conversations.TimeoutSweep(context.Background())
	if err != nil {
		slog.Error("Sweep: conversation timeout failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Sweep: timed out idle conversations", "count", count)
	}
}

// requeueFailedSyncs enqueues a ticket_sync for every open ticket whose
// upstream sync failed. Dispatch is a no-op for tickets that got synced in
// the meantime, so duplicate enqueues are harmless.
func (s *Service) requeueFailedSyncs(_ context.Context) {
	ctx := context.Background()
	ids, err := s.tickets.FailedSyncIDs(ctx)
	if err != nil {
		slog.Error("Sweep: failed-sync listing failed", "error", err)
		return
	}

	requeued := 0
	for _, id := range ids {
		payload, err := json.Marshal(models.TicketSyncPayload{TicketID: id})
		if err != nil {
			slog.Error("Sweep: failed to build sync payload", "ticket_id", id, "error", err)
			continue
		}
		if _, err := s.integrations.Enqueue(ctx, services.EnqueueInput{
			Type:    string(models.IntegrationTypeTicketSync),
			Payload: payload,
		}); err != nil {
			slog.Error("Sweep: failed to requeue ticket sync", "ticket_id", id, "error", err)
			continue
		}
		requeued++
	}
	if requeued > 0 {
		slog.Info("Sweep: requeued failed ticket syncs", "count", requeued)
	}
}

func (s *Service) clearExpiredCache() {
	if s.cache == nil {
		return
	}
	if removed := s.cache.ClearExpired(); removed > 0 {
		slog.Info("Sweep: dropped expired cache entries", "count", removed)
	}
}

func (s *Service) purgeOldRecords(_ context.Context) {
	ctx := context.Background()
	before := time.Now().AddDate(0, 0, -s.config.RecordRetentionDays)

	type purge struct {
		name string
		fn   func(context.Context, time.Time) (int, error)
	}
	for _, p := range []purge{
		{"verifications", s.verifications.PurgeOld},
		{"conversations", s.conversations.PurgeOld},
		{"tickets", s.tickets.PurgeOld},
		{"integrations", s.integrations.PurgeOld},
	} {
		count, err := p.fn(ctx, before)
		if err != nil {
			slog.Error("Retention: purge failed", "target", p.name, "error", err)
			continue
		}
		if count > 0 {
			slog.Info("Retention: purged old records", "target", p.name, "count", count)
		}
	}
}
