package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasfibra/backoffice/pkg/events"
	"github.com/atlasfibra/backoffice/pkg/masking"
)

// fakePoster records posted channels without touching the network.
type fakePoster struct {
	mu       sync.Mutex
	channels []string
	err      error
}

func (f *fakePoster) PostMessageContext(_ context.Context, channelID string, _ ...slack.MsgOption) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channels = append(f.channels, channelID)
	return channelID, "1", f.err
}

func (f *fakePoster) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.channels)
}

func TestService_PostsNotificationEvents(t *testing.T) {
	poster := &fakePoster{}
	svc := NewServiceWithClient(poster, "#backoffice-ops", masking.NewService())

	bus := events.NewBus(4, time.Second)
	svc.Register(bus)

	ctx := context.Background()
	require.Empty(t, bus.Publish(ctx, events.NewTechNotificationRequired(
		"Integration request failed", "request abc exhausted after 3 attempts", "error")))
	require.Empty(t, bus.Publish(ctx, events.NewAdminNotificationRequired(
		"Duplicate CPF needs review", "two accounts claim the same document")))

	assert.Equal(t, 2, poster.count())
	assert.Equal(t, []string{"#backoffice-ops", "#backoffice-ops"}, poster.channels)
}

func TestService_MasksPersonalData(t *testing.T) {
	masker := masking.NewService()

	masked := masker.MaskText("client 111.444.777-35 reported an outage")
	assert.Equal(t, "client 111.444.***-** reported an outage", masked)

	// The handler path masks before posting; a poster error surfaces so the
	// bus can log it.
	failing := NewServiceWithClient(&fakePoster{err: assert.AnError}, "#ops", masker)
	err := failing.handleTech(context.Background(), events.NewTechNotificationRequired(
		"subject", "cpf 11144477735", "warning"))
	require.Error(t, err)
}

func TestService_NilIsDisabled(t *testing.T) {
	var svc *Service
	assert.Nil(t, NewService("", "#ops", nil))

	bus := events.NewBus(1, time.Second)
	svc.Register(bus) // must not panic
	assert.Zero(t, bus.HandlerCount(events.TypeTechNotificationRequired))
}

func TestService_RejectsForeignEvents(t *testing.T) {
	svc := NewServiceWithClient(&fakePoster{}, "#ops", nil)
	err := svc.handleTech(context.Background(), events.NewAdminNotificationRequired("s", "b"))
	require.Error(t, err)
}
