package events

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMasker captures every text passed through it.
type recordingMasker struct {
	mu   sync.Mutex
	seen []string
}

func (m *recordingMasker) MaskText(text string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = append(m.seen, text)
	return strings.ReplaceAll(text, "11144477735", "111.444.***-**")
}

func TestAuditLogger_MasksEveryEventPayload(t *testing.T) {
	bus := NewBus(4, time.Second)
	masker := &recordingMasker{}
	NewAuditLogger(masker).Register(bus)

	errs := bus.Publish(context.Background(),
		NewTechNotificationRequired("subject", "cpf 11144477735 failed lookup", "warning"))
	require.Empty(t, errs)

	masker.mu.Lock()
	defer masker.mu.Unlock()
	require.Len(t, masker.seen, 1)
	assert.Contains(t, masker.seen[0], "11144477735", "raw payload reaches the masker")
}

func TestAuditLogger_DuplicateRegisterIsNoop(t *testing.T) {
	bus := NewBus(1, time.Second)
	audit := NewAuditLogger(&recordingMasker{})
	audit.Register(bus)
	audit.Register(bus)

	errs := bus.Publish(context.Background(), NewAdminNotificationRequired("s", "b"))
	require.Empty(t, errs)
}
