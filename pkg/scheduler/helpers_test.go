package scheduler

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/ent"
	"github.com/atlasfibra/backoffice/ent/ticket"
	"github.com/atlasfibra/backoffice/pkg/cache"
	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/models"
	"github.com/atlasfibra/backoffice/pkg/ratelimit"
	"github.com/atlasfibra/backoffice/pkg/services"
	"github.com/atlasfibra/backoffice/test/util"
)

// Checksum-valid CPFs used across scheduler tests.
const (
	testCPF      = "11144477735"
	testCPFOther = "52998224725"
	testCPFThird = "12345678909"
)

// fakeClock is a mutable deterministic time source. It starts slightly ahead
// of the wall clock so rows enqueued with real timestamps are immediately
// claimable.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Now().UTC().Add(time.Minute)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// eventRecorder captures every event published on the bus.
type eventRecorder struct {
	mu   sync.Mutex
	evts []events.DomainEvent
}

func (r *eventRecorder) handle(_ context.Context, e events.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evts = append(r.evts, e)
	return nil
}

func (r *eventRecorder) countOf(eventType string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.evts {
		if e.EventType() == eventType {
			n++
		}
	}
	return n
}

// fixture wires one worker against a test database, the fake upstream, a
// recording bus, and a fake clock. Tests that need a tighter rate budget or
// breaker swap the limiter or config and call rebuild.
type fixture struct {
	client       *ent.Client
	bus          *events.Bus
	recorder     *eventRecorder
	hub          *hubsoft.Fake
	clock        *fakeClock
	cfg          *config.SchedulerConfig
	limiter      *ratelimit.Window
	cache        *cache.Cache
	breaker      *Breaker
	integrations *services.IntegrationService
	tickets      *services.TicketService
	worker       *Worker
}

func newFixture(t *testing.T) *fixture {
	client, _ := util.SetupTestDatabase(t)

	f := &fixture{
		client:   client,
		bus:      events.NewBus(4, 5*time.Second),
		recorder: &eventRecorder{},
		hub:      hubsoft.NewFake(),
		clock:    newFakeClock(),
		cache:    cache.New(5*time.Minute, 100),
		limiter:  ratelimit.NewWindow(100, time.Minute),
	}
	f.bus.SubscribeAll("recorder", f.recorder.handle)

	f.cfg = config.DefaultSchedulerConfig()
	f.cfg.BreakerThreshold = 3
	f.cfg.BreakerProbeInterval = 50 * time.Millisecond
	f.cfg.HeartbeatInterval = 20 * time.Millisecond
	f.cfg.PollInterval = 10 * time.Millisecond
	f.cfg.PollIntervalJitter = 5 * time.Millisecond
	f.cfg.GracefulShutdownTimeout = 5 * time.Second

	f.integrations = services.NewIntegrationService(client, f.bus)
	f.tickets = services.NewTicketService(client, f.bus, f.hub)

	f.rebuild()
	return f
}

// rebuild reconstructs the breaker, dispatcher, and worker with the
// fixture's current limiter and config.
func (f *fixture) rebuild() {
	f.breaker = NewBreaker(f.hub, f.cfg)
	dispatcher := NewDispatcher(f.hub, f.tickets, f.cache, f.limiter)
	f.worker = NewWorker("pod-test-worker-0", "pod-test", f.client, f.cfg, dispatcher, f.breaker, f.limiter, f.bus)
	f.worker.now = f.clock.Now
}

// enqueue stores an integration request through the write-side service.
func (f *fixture) enqueue(t *testing.T, typ string, payload any, mutate ...func(*services.EnqueueInput)) *models.IntegrationRequest {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	in := services.EnqueueInput{Type: typ, Payload: raw}
	for _, m := range mutate {
		m(&in)
	}
	r, err := f.integrations.Enqueue(context.Background(), in)
	require.NoError(t, err)
	return r
}

// seedTicket inserts a pending ticket row the scheduler can sync.
func (f *fixture) seedTicket(t *testing.T, id string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := f.client.Ticket.Create().
		SetID(id).
		SetOwnerID(42).
		SetOwnerUsername("maria").
		SetOwnerCpfMasked("111.444.***-**").
		SetCategory("connectivity").
		SetGame("valorant").
		SetProblemTiming("now").
		SetDescription("lag spikes every evening").
		SetUrgency(ticket.UrgencyNormal).
		SetStatus(ticket.StatusPending).
		SetProtocol(models.LocalProtocol(id)).
		SetSyncStatus(ticket.SyncStatusPending).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(context.Background())
	require.NoError(t, err)
}

// seedClient registers an habilitado upstream client for the given CPF.
func (f *fixture) seedClient(cpfDigits, name string) {
	f.hub.AddClient(cpfDigits, hubsoft.ClientRecord{
		Name:          name,
		ServiceName:   "Fibra 500MB",
		ServiceStatus: "Serviço Habilitado",
		ServiceID:     "srv-" + cpfDigits[:3],
	})
}
