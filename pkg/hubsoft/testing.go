package hubsoft

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Fake is an in-memory Client for tests. Seed clients with AddClient, inject
// failures with FailNext/FailAll, and inspect Calls afterwards.
type Fake struct {
	mu       sync.Mutex
	clients  map[string]*ClientRecord // keyed by canonical CPF digits
	tickets  map[string]*TicketStatus
	nextID   int
	failNext []error
	failAll  error
	calls    []string
}

// NewFake creates an empty fake upstream.
func NewFake() *Fake {
	return &Fake{
		clients: make(map[string]*ClientRecord),
		tickets: make(map[string]*TicketStatus),
	}
}

// AddClient seeds a client record for the given CPF digits.
func (f *Fake) AddClient(cpf string, record ClientRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients[cpf] = &record
}

// FailNext queues an error returned by the next call (FIFO across calls).
func (f *Fake) FailNext(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = append(f.failNext, err)
}

// FailAll makes every call fail with err until reset with FailAll(nil).
func (f *Fake) FailAll(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAll = err
}

// Calls returns the operations invoked so far, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many times the named operation was invoked.
func (f *Fake) CallCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

// begin records the call and pops any injected failure.
func (f *Fake) begin(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
	if f.failAll != nil {
		return f.failAll
	}
	if len(f.failNext) > 0 {
		err := f.failNext[0]
		f.failNext = f.failNext[1:]
		return err
	}
	return nil
}

func (f *Fake) VerifyClientByCPF(ctx context.Context, cpf string, includeContracts bool) (*ClientRecord, error) {
	if err := f.begin(ctx, "VerifyClientByCPF"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.clients[cpf]
	if !ok || !containsHabilitado(record.ServiceStatus) {
		return nil, ErrClientNotFound
	}
	out := *record
	if !includeContracts {
		out.Contracts = nil
	}
	return &out, nil
}

func (f *Fake) CreateTicket(ctx context.Context, payload TicketPayload) (*TicketRef, error) {
	if err := f.begin(ctx, "CreateTicket"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	ref := &TicketRef{
		UpstreamID: fmt.Sprintf("hub-%d", f.nextID),
		Protocol:   fmt.Sprintf("%s/%06d", time.Now().UTC().Format("200601"), f.nextID),
	}
	f.tickets[ref.UpstreamID] = &TicketStatus{
		UpstreamID: ref.UpstreamID,
		Protocol:   ref.Protocol,
		Status:     "aberto",
	}
	return ref, nil
}

func (f *Fake) UpdateTicket(ctx context.Context, upstreamID string, patch TicketPatch) error {
	if err := f.begin(ctx, "UpdateTicket"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tickets[upstreamID]
	if !ok {
		return &APIError{StatusCode: 404, Code: "upstream_not_found", Message: upstreamID}
	}
	if patch.Status != "" {
		t.Status = patch.Status
	}
	return nil
}

func (f *Fake) GetTicketStatus(ctx context.Context, upstreamID string) (*TicketStatus, error) {
	if err := f.begin(ctx, "GetTicketStatus"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tickets[upstreamID]
	if !ok {
		return nil, &APIError{StatusCode: 404, Code: "upstream_not_found", Message: upstreamID}
	}
	out := *t
	return &out, nil
}

func (f *Fake) SearchTicketsByCPF(ctx context.Context, cpf string, limit int) ([]TicketStatus, error) {
	if err := f.begin(ctx, "SearchTicketsByCPF"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []TicketStatus
	for _, t := range f.tickets {
		out = append(out, *t)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *Fake) GetClientContracts(ctx context.Context, cpf string) ([]Contract, error) {
	if err := f.begin(ctx, "GetClientContracts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.clients[cpf]
	if !ok {
		return nil, ErrClientNotFound
	}
	return append([]Contract(nil), record.Contracts...), nil
}

func (f *Fake) CheckHealth(ctx context.Context) (*HealthStatus, error) {
	if err := f.begin(ctx, "CheckHealth"); err != nil {
		return &HealthStatus{Status: "unhealthy"}, err
	}
	return &HealthStatus{Status: "healthy", ResponseTime: 1}, nil
}

func containsHabilitado(status string) bool {
	return strings.Contains(strings.ToLower(status), "habilitado")
}
