package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/atlasfibra/backoffice/pkg/cache"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/models"
	"github.com/atlasfibra/backoffice/pkg/ratelimit"
)

// defaultBulkBatchSize bounds how many tickets a bulk_sync dispatch pushes
// before pausing for the configured batch delay.
const defaultBulkBatchSize = 10

// Dispatcher executes one integration request against the upstream. Every
// upstream call consumes one unit of the shared rate budget; client lookups
// are served from the TTL cache when possible.
type Dispatcher struct {
	hub     hubsoft.Client
	tickets TicketSyncer
	cache   *cache.Cache
	limiter *ratelimit.Window
	logger  *slog.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(hub hubsoft.Client, tickets TicketSyncer, c *cache.Cache, limiter *ratelimit.Window) *Dispatcher {
	if hub == nil {
		panic("NewDispatcher: hub must not be nil")
	}
	if tickets == nil {
		panic("NewDispatcher: tickets must not be nil")
	}
	if c == nil {
		panic("NewDispatcher: cache must not be nil")
	}
	if limiter == nil {
		panic("NewDispatcher: limiter must not be nil")
	}
	return &Dispatcher{
		hub:     hub,
		tickets: tickets,
		cache:   c,
		limiter: limiter,
		logger:  slog.With("component", "scheduler_dispatcher"),
	}
}

// Dispatch executes the request and returns the upstream response to store.
func (d *Dispatcher) Dispatch(ctx context.Context, r *models.IntegrationRequest) (json.RawMessage, error) {
	switch r.Type {
	case models.IntegrationTypeTicketSync:
		return d.dispatchTicketSync(ctx, r.Payload)
	case models.IntegrationTypeUserVerification:
		return d.dispatchUserVerification(ctx, r.Payload)
	case models.IntegrationTypeClientDataFetch:
		return d.dispatchClientDataFetch(ctx, r.Payload)
	case models.IntegrationTypeBulkSync:
		return d.dispatchBulkSync(ctx, r.Payload)
	case models.IntegrationTypeStatusUpdate:
		return d.dispatchStatusUpdate(ctx, r.Payload)
	}
	return nil, fmt.Errorf("dispatch: unknown integration type %q", r.Type)
}

func (d *Dispatcher) dispatchTicketSync(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var p models.TicketSyncPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("ticket_sync payload: %w", err)
	}

	if err := d.budget(ctx); err != nil {
		return nil, err
	}
	t, err := d.tickets.SyncWithUpstream(ctx, p.TicketID)
	if err != nil {
		return nil, err
	}

	return json.Marshal(map[string]string{
		"ticket_id":   t.ID,
		"upstream_id": t.UpstreamID,
		"protocol":    t.Protocol,
	})
}

func (d *Dispatcher) dispatchUserVerification(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var p models.UserVerificationPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("user_verification payload: %w", err)
	}

	if err := d.budget(ctx); err != nil {
		return nil, err
	}
	record, err := d.hub.VerifyClientByCPF(ctx, p.CPF, false)
	if err != nil {
		return nil, err
	}
	return json.Marshal(record)
}

func (d *Dispatcher) dispatchClientDataFetch(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var p models.ClientDataFetchPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("client_data_fetch payload: %w", err)
	}

	key := cache.Key("client_data", p.CPF, strconv.FormatBool(p.IncludeContracts))
	if cached, ok := d.cache.Get(key); ok {
		if record, ok := cached.(*hubsoft.ClientRecord); ok {
			return json.Marshal(record)
		}
	}

	if err := d.budget(ctx); err != nil {
		return nil, err
	}
	record, err := d.hub.VerifyClientByCPF(ctx, p.CPF, p.IncludeContracts)
	if err != nil {
		return nil, err
	}
	d.cache.Set(key, record)
	return json.Marshal(record)
}

// bulkResult is the per-ticket outcome of a bulk sync.
type bulkResult struct {
	Synced []string `json:"synced"`
	Failed []string `json:"failed,omitempty"`
}

func (d *Dispatcher) dispatchBulkSync(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var p models.BulkSyncPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("bulk_sync payload: %w", err)
	}

	batchSize := p.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBulkBatchSize
	}

	var result bulkResult
	var errs []error
	for i, ticketID := range p.TicketIDs {
		if i > 0 && i%batchSize == 0 && p.BatchDelay > 0 {
			if err := sleepCtx(ctx, p.BatchDelay); err != nil {
				return nil, err
			}
		}

		if err := d.budget(ctx); err != nil {
			return nil, err
		}
		if _, err := d.tickets.SyncWithUpstream(ctx, ticketID); err != nil {
			d.logger.Warn("Bulk sync ticket failed", "ticket_id", ticketID, "error", err)
			result.Failed = append(result.Failed, ticketID)
			errs = append(errs, fmt.Errorf("ticket %s: %w", ticketID, err))
			continue
		}
		result.Synced = append(result.Synced, ticketID)
	}

	response, merr := json.Marshal(result)
	if merr != nil {
		return nil, merr
	}
	if len(errs) > 0 {
		return response, fmt.Errorf("bulk sync: %d of %d tickets failed: %w",
			len(result.Failed), len(p.TicketIDs), errors.Join(errs...))
	}
	return response, nil
}

func (d *Dispatcher) dispatchStatusUpdate(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var p models.StatusUpdatePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("status_update payload: %w", err)
	}

	if err := d.budget(ctx); err != nil {
		return nil, err
	}
	if err := d.hub.UpdateTicket(ctx, p.UpstreamID, hubsoft.TicketPatch{Status: p.Status}); err != nil {
		return nil, err
	}

	return json.Marshal(map[string]string{
		"upstream_id": p.UpstreamID,
		"status":      p.Status,
	})
}

// budget blocks until the rolling rate window admits one more upstream call.
// WaitForBudget reserves the unit atomically, so concurrent workers cannot
// overshoot the cap between checking and recording.
func (d *Dispatcher) budget(ctx context.Context) error {
	return d.limiter.WaitForBudget(ctx)
}

// sleepCtx waits for d or until the context ends.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
