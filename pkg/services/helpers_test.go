package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/atlasfibra/backoffice/ent"
	"github.com/atlasfibra/backoffice/pkg/config"
	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/hubsoft"
	"github.com/atlasfibra/backoffice/pkg/models"
	"github.com/atlasfibra/backoffice/test/util"
)

// Checksum-valid CPFs used across service tests.
const (
	testCPF       = "11144477735"
	testCPFOther  = "52998224725"
	testCPFMasked = "111.444.***-**"
	testSalt      = "test-salt"
)

// fakeClock is a mutable deterministic time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
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

func (r *eventRecorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.evts))
	for _, e := range r.evts {
		out = append(out, e.EventType())
	}
	return out
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

func (r *eventRecorder) last(eventType string) events.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.evts) - 1; i >= 0; i-- {
		if r.evts[i].EventType() == eventType {
			return r.evts[i]
		}
	}
	return nil
}

// fixture wires every service against one test database, a recording bus,
// the fake upstream, a fake clock, and sequential ids.
type fixture struct {
	client        *ent.Client
	bus           *events.Bus
	recorder      *eventRecorder
	hub           *hubsoft.Fake
	clock         *fakeClock
	users         *UserService
	dupes         *DuplicateService
	verifications *VerificationService
	integrations  *IntegrationService
	conversations *ConversationService
	tickets       *TicketService
}

func newFixture(t *testing.T) *fixture {
	client, _ := util.SetupTestDatabase(t)

	f := &fixture{
		client:   client,
		bus:      events.NewBus(4, 5*time.Second),
		recorder: &eventRecorder{},
		hub:      hubsoft.NewFake(),
		clock:    newFakeClock(),
	}
	f.bus.SubscribeAll("recorder", f.recorder.handle)

	var seq int
	nextID := func() string {
		seq++
		return fmt.Sprintf("id-%04d", seq)
	}

	f.users = NewUserService(client, f.bus)
	f.users.now = f.clock.Now

	f.dupes = NewDuplicateService(client, f.bus)
	f.dupes.now = f.clock.Now

	f.verifications = NewVerificationService(
		client, f.bus, f.hub, f.users, f.dupes, config.DefaultVerificationConfig(), testSalt)
	f.verifications.now = f.clock.Now
	f.verifications.newID = nextID

	f.integrations = NewIntegrationService(client, f.bus)
	f.integrations.now = f.clock.Now
	f.integrations.newID = nextID

	f.conversations = NewConversationService(client, f.bus, f.integrations, config.DefaultConversationConfig())
	f.conversations.now = f.clock.Now
	f.conversations.newID = nextID

	f.tickets = NewTicketService(client, f.bus, f.hub)
	f.tickets.now = f.clock.Now

	return f
}

// seedActiveClient registers a habilitado client for testCPF upstream.
func (f *fixture) seedActiveClient() {
	f.hub.AddClient(testCPF, hubsoft.ClientRecord{
		Name:          "Maria Souza",
		ServiceName:   "Fibra 500MB",
		ServiceStatus: "Serviço Habilitado",
		ServiceID:     "srv-77",
	})
}

// verifyUser runs a user through a full successful verification.
func (f *fixture) verifyUser(t *testing.T, ctx context.Context, userID models.UserID, username string) {
	t.Helper()
	f.seedActiveClient()
	if _, err := f.verifications.StartVerification(ctx, userID, username, models.VerificationTypeSupportRequest, "test"); err != nil {
		t.Fatalf("start verification: %v", err)
	}
	if _, err := f.verifications.SubmitCPF(ctx, userID, testCPF); err != nil {
		t.Fatalf("submit cpf: %v", err)
	}
}
